package npcm8xx

import (
	"github.com/Jon-Bright/npcmclk/clktree"
)

// Export ids, matching the devicetree binding for nuvoton,npcm845-clk.
// Consumers ask for rates by these; everything else in the tree is an
// internal node.
const (
	ClkCPU = iota
	ClkGFXPixel
	ClkMC
	ClkADC
	ClkAHB
	ClkTimer
	ClkUART
	ClkMMC
	ClkSPI3
	ClkPCI
	ClkAXI
	ClkAPB4
	ClkAPB3
	ClkAPB2
	ClkAPB1
	ClkAPB5
	ClkCLKOUT
	ClkGFX
	ClkSU
	ClkSU48
	ClkSDHC
	ClkSPI0
	ClkSPI1
	ClkSPIX
	ClkRG
	ClkRCP
	ClkPreADC
	ClkUART2
	ClkREFCLK
	ClkSYSBYPCK
	ClkMCBYPCK
	ClkTH
	NumClocks
)

// Single copy of the names used to wire clocks to each other.
const (
	RefClk    = "refclk"
	SysBypCk  = "sysbypck"
	McBypCk   = "mcbypck"
	Pll0      = "pll0"
	Pll1      = "pll1"
	Pll1Div2  = "pll1_div2"
	Pll2      = "pll2"
	PllGfx    = "pll_gfx"
	Pll2Div2  = "pll2_div2"
	PixMux    = "gfx_pixel"
	McMux     = "mc_phy"
	CpuMux    = "cpu" // AKA system clock
	Axi       = "axi" // AKA CLK2
	Ahb       = "ahb" // AKA CLK4
	ClkoutMux = "clkout_mux"
	UartMux   = "uart_mux"
	SdMux     = "sd_mux"
	GfxmMux   = "gfxm_mux"
	SuMux     = "serial_usb_mux"
	DvcMux    = "dvc_mux"
	GfxMux    = "gfx_mux"
	AdcMux    = "adc_mux"
	Spi0      = "spi0"
	Spi1      = "spi1"
	Spi3      = "spi3"
	Spix      = "spix"
	Apb1      = "apb1"
	Apb2      = "apb2"
	Apb3      = "apb3"
	Apb4      = "apb4"
	Apb5      = "apb5"
	Clkout    = "clkout"
	PreAdc    = "pre_adc"
	Uart      = "uart"
	Uart2     = "uart2"
	Mmc       = "mmc"
	Sdhc      = "sdhc"
	Adc       = "adc"
	Gfx       = "gfx0_gfx1_mem"
	UsbHost   = "usb_host"
	UsbBridge = "usb_bridge"
	Pci       = "pci"
	Th        = "th"
	Atb       = "atb"
	PreClk    = "pre_clk"
	Rg        = "rg"
	RgMux     = "rg_mux"
	Rcp       = "rcp"
	RcpMux    = "rcp_mux"
)

// Shared mux selector tables. A table entry is the raw CLKSEL field
// value that picks the parent at the same position.
var (
	pllMuxTable   = []uint32{0, 1, 2, 3}
	pllMuxParents = []string{Pll0, Pll1, RefClk, Pll2Div2}

	cpuckMuxTable   = []uint32{0, 1, 2, 3, 7}
	cpuckMuxParents = []string{Pll0, Pll1, RefClk, SysBypCk, Pll2}

	pixckselTable   = []uint32{0, 2}
	pixckselParents = []string{PllGfx, RefClk}

	suckselTable   = []uint32{2, 3}
	suckselParents = []string{RefClk, Pll2Div2}

	mcckselTable   = []uint32{0, 2, 3}
	mcckselParents = []string{Pll1Div2, RefClk, McBypCk}

	clkoutselTable   = []uint32{0, 1, 2, 3, 4}
	clkoutselParents = []string{Pll0, Pll1, RefClk, PllGfx, Pll2Div2}

	gfxmselTable   = []uint32{2, 3}
	gfxmselParents = []string{RefClk, Pll2Div2}

	dvcsselTable   = []uint32{2, 3}
	dvcsselParents = []string{RefClk, Pll2}
)

func field(shift, width uint8) clktree.Field {
	return clktree.Field{Shift: shift, Width: width}
}

// Config is the full NPCM8xx clock tree as the boot loader leaves it.
// sysbypck and mcbypck are board-fed bypass pads whose frequency the
// software can't know; they're modelled as 0Hz sources so anything
// selecting them reports a dead branch instead of a made-up rate.
func Config() *clktree.Config {
	return &clktree.Config{
		FixedRates: []clktree.FixedRateData{
			{Name: RefClk, Rate: RefClkHz, Export: ClkREFCLK},
			{Name: SysBypCk, Rate: 0, Export: clktree.NoExport},
			{Name: McBypCk, Rate: 0, Export: clktree.NoExport},
		},
		Plls: []clktree.PllData{
			{Reg: PLLCON0, Name: Pll0, Parent: RefClk, Export: clktree.NoExport},
			{Reg: PLLCON1, Name: Pll1, Parent: RefClk, Export: clktree.NoExport},
			{Reg: PLLCON2, Name: Pll2, Parent: RefClk, Export: clktree.NoExport},
			{Reg: PLLCONG, Name: PllGfx, Parent: RefClk, Export: clktree.NoExport},
		},
		FixedFactors: []clktree.FixedFactorData{
			{Name: Pll1Div2, Parent: Pll1, Mult: 1, Div: 2, Export: clktree.NoExport},
			{Name: Pll2Div2, Parent: Pll2, Mult: 1, Div: 2, Export: clktree.NoExport},
			{Name: PreClk, Parent: CpuMux, Mult: 1, Div: 2, Export: clktree.NoExport},
			{Name: Axi, Parent: Th, Mult: 1, Div: 2, Export: ClkAXI},
			{Name: Atb, Parent: Axi, Mult: 1, Div: 2, Export: clktree.NoExport},
		},
		Muxes: []clktree.MuxData{
			// CPUCKSEL is a 3-bit field; raw 7 selects pll2.
			{Reg: CLKSEL, Field: field(0, 3), Table: cpuckMuxTable, Name: CpuMux,
				Parents: cpuckMuxParents, Export: ClkCPU},
			{Reg: CLKSEL, Field: field(4, 2), Table: pixckselTable, Name: PixMux,
				Parents: pixckselParents, Export: ClkGFXPixel},
			{Reg: CLKSEL, Field: field(6, 2), Table: pllMuxTable, Name: SdMux,
				Parents: pllMuxParents, Export: clktree.NoExport},
			{Reg: CLKSEL, Field: field(8, 2), Table: pllMuxTable, Name: UartMux,
				Parents: pllMuxParents, Export: clktree.NoExport},
			{Reg: CLKSEL, Field: field(10, 2), Table: suckselTable, Name: SuMux,
				Parents: suckselParents, Export: clktree.NoExport},
			{Reg: CLKSEL, Field: field(12, 2), Table: mcckselTable, Name: McMux,
				Parents: mcckselParents, Export: clktree.NoExport},
			{Reg: CLKSEL, Field: field(14, 2), Table: pllMuxTable, Name: AdcMux,
				Parents: pllMuxParents, Export: clktree.NoExport},
			{Reg: CLKSEL, Field: field(16, 2), Table: pllMuxTable, Name: GfxMux,
				Parents: pllMuxParents, Export: clktree.NoExport},
			{Reg: CLKSEL, Field: field(18, 3), Table: clkoutselTable, Name: ClkoutMux,
				Parents: clkoutselParents, Export: clktree.NoExport},
			{Reg: CLKSEL, Field: field(21, 2), Table: gfxmselTable, Name: GfxmMux,
				Parents: gfxmselParents, Export: clktree.NoExport},
			{Reg: CLKSEL, Field: field(23, 2), Table: dvcsselTable, Name: DvcMux,
				Parents: dvcsselParents, Export: clktree.NoExport},
			{Reg: CLKSEL, Field: field(25, 2), Table: pllMuxTable, Name: RgMux,
				Parents: pllMuxParents, Export: clktree.NoExport},
			{Reg: CLKSEL, Field: field(27, 2), Table: pllMuxTable, Name: RcpMux,
				Parents: pllMuxParents, Export: clktree.NoExport},
		},
		Dividers: []clktree.DividerData{
			// CLKDIV1
			{Reg: CLKDIV1, Field: field(28, 3), Name: Adc, Parent: PreAdc,
				PowerOfTwo: true, Export: ClkADC},
			{Reg: CLKDIV1, Field: field(26, 2), Name: Ahb, Parent: PreClk,
				Export: ClkAHB},
			{Reg: CLKDIV1, Field: field(21, 5), Name: PreAdc, Parent: AdcMux,
				Export: ClkPreADC},
			{Reg: CLKDIV1, Field: field(16, 5), Name: Uart, Parent: UartMux,
				Export: ClkUART},
			{Reg: CLKDIV1, Field: field(11, 5), Name: Mmc, Parent: SdMux,
				Export: ClkMMC},
			{Reg: CLKDIV1, Field: field(6, 5), Name: Spi3, Parent: Ahb,
				Export: ClkSPI3},
			{Reg: CLKDIV1, Field: field(2, 4), Name: Pci, Parent: GfxMux,
				Export: ClkPCI},
			// CLKDIV2
			{Reg: CLKDIV2, Field: field(30, 2), Name: Apb4, Parent: Ahb,
				PowerOfTwo: true, Export: ClkAPB4},
			{Reg: CLKDIV2, Field: field(28, 2), Name: Apb3, Parent: Ahb,
				PowerOfTwo: true, Export: ClkAPB3},
			{Reg: CLKDIV2, Field: field(26, 2), Name: Apb2, Parent: Ahb,
				PowerOfTwo: true, Export: ClkAPB2},
			{Reg: CLKDIV2, Field: field(24, 2), Name: Apb1, Parent: Ahb,
				PowerOfTwo: true, Export: ClkAPB1},
			{Reg: CLKDIV2, Field: field(22, 2), Name: Apb5, Parent: Ahb,
				PowerOfTwo: true, Export: ClkAPB5},
			{Reg: CLKDIV2, Field: field(16, 5), Name: Clkout, Parent: ClkoutMux,
				Export: ClkCLKOUT},
			{Reg: CLKDIV2, Field: field(13, 3), Name: Gfx, Parent: GfxMux,
				Export: ClkGFX},
			{Reg: CLKDIV2, Field: field(8, 5), Name: UsbBridge, Parent: SuMux,
				Export: ClkSU},
			{Reg: CLKDIV2, Field: field(4, 4), Name: UsbHost, Parent: SuMux,
				Export: ClkSU48},
			{Reg: CLKDIV2, Field: field(0, 4), Name: Sdhc, Parent: SdMux,
				Export: ClkSDHC},
			// CLKDIV3
			{Reg: CLKDIV3, Field: field(16, 8), Name: Spi1, Parent: Ahb,
				Export: ClkSPI1},
			{Reg: CLKDIV3, Field: field(11, 5), Name: Uart2, Parent: UartMux,
				Export: ClkUART2},
			{Reg: CLKDIV3, Field: field(6, 5), Name: Spi0, Parent: Ahb,
				Export: ClkSPI0},
			{Reg: CLKDIV3, Field: field(1, 5), Name: Spix, Parent: Ahb,
				Export: ClkSPIX},
			// CLKDIV4
			{Reg: CLKDIV4, Field: field(28, 4), Name: Rg, Parent: RgMux,
				Export: ClkRG},
			{Reg: CLKDIV4, Field: field(12, 4), Name: Rcp, Parent: RcpMux,
				Export: ClkRCP},
			// THRTL_CNT
			{Reg: THRTL_CNT, Field: field(0, 2), Name: Th, Parent: CpuMux,
				PowerOfTwo: true, Export: ClkTH},
		},
	}
}

// Tree builds the NPCM8xx clock tree. The table above is fixed, so an
// error here means this package itself is wrong.
func Tree() (*clktree.Tree, error) {
	return clktree.New(Config())
}
