// Package npcm8xx carries the static clock-tree description of the
// Nuvoton NPCM8xx BMC SoC: register map, node wiring and export ids.
// The boot loader configures all of these registers before Linux
// starts; everything here is read-only bookkeeping over that result.
package npcm8xx

// Reference crystal feeding every PLL.
const RefClkHz = 25000000

// Clock controller register offsets.
const (
	CLKEN1    = 0x00
	CLKSEL    = 0x04
	CLKDIV1   = 0x08
	PLLCON0   = 0x0C
	PLLCON1   = 0x10
	SWRSTR    = 0x14
	IPSRST1   = 0x20
	IPSRST2   = 0x24
	CLKEN2    = 0x28
	CLKDIV2   = 0x2C
	CLKEN3    = 0x30
	IPSRST3   = 0x34
	WD0RCR    = 0x38
	WD1RCR    = 0x3C
	WD2RCR    = 0x40
	SWRSTC1   = 0x44
	SWRSTC2   = 0x48
	SWRSTC3   = 0x4C
	SWRSTC4   = 0x50
	PLLCON2   = 0x54
	CLKDIV3   = 0x58
	CORSTC    = 0x5C
	PLLCONG   = 0x60
	AHBCKFI   = 0x64
	SECCNT    = 0x68
	CNTR25M   = 0x6C
	CLKEN4    = 0x70
	CLKDIV4   = 0x7C
	THRTL_CNT = 0xC0
)

// WindowSize covers every register the tree reads.
const WindowSize = 0x100

// RegNames maps the offsets above to datasheet names, for dumps.
var RegNames = map[uint32]string{
	CLKEN1:    "Clock Enable 1",
	CLKSEL:    "Clock Select",
	CLKDIV1:   "Clock Divider 1",
	PLLCON0:   "PLL0 Control",
	PLLCON1:   "PLL1 Control",
	SWRSTR:    "Software Reset",
	IPSRST1:   "IP Software Reset 1",
	IPSRST2:   "IP Software Reset 2",
	CLKEN2:    "Clock Enable 2",
	CLKDIV2:   "Clock Divider 2",
	CLKEN3:    "Clock Enable 3",
	IPSRST3:   "IP Software Reset 3",
	PLLCON2:   "PLL2 Control",
	CLKDIV3:   "Clock Divider 3",
	PLLCONG:   "Graphics PLL Control",
	AHBCKFI:   "AHB Clock Frequency Information",
	SECCNT:    "Seconds Counter",
	CNTR25M:   "25MHz Counter",
	CLKEN4:    "Clock Enable 4",
	CLKDIV4:   "Clock Divider 4",
	THRTL_CNT: "Throttle Counter",
}
