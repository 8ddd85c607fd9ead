package devicedesc

import (
	"fmt"

	"github.com/gp4par/gp4par/pkg/par"
)

// NewSLG46620 builds the fixed site catalog for the SLG46620 part: 20
// IOBs, two independent routing matrices' worth of combinational and
// sequential logic, and the full complement of mixed-signal and clock
// hard IP the SLG46620-specific dedicated-edge table in
// par.BuildDeviceGraph expects (oscillators, system reset, six VREFs,
// six comparators, a PGA, an ABUF, and two DACs).
func NewSLG46620() *Device {
	d := &Device{part: par.PartSLG46620}

	// Pins wired into the dedicated-edge table (system reset source,
	// VREF outputs, comparator/PGA analog fan-in) must exist; the rest
	// fill out the 20-pin package as ordinary type A IOBs.
	typeBPins := map[int]bool{3: true, 4: true, 8: true, 9: true}
	inputOnlyPins := map[int]bool{0: true}
	for pin := 0; pin < 20; pin++ {
		matrix := pin % 2
		typeA := !typeBPins[pin]
		inputOnly := inputOnlyPins[pin]
		iob := newIOB(fmt.Sprintf("P%d", pin), pin, matrix, typeA, inputOnly)
		d.iobs = append(d.iobs, iob)
	}

	for i := 0; i < 4; i++ {
		d.lut2s = append(d.lut2s, newSite(fmt.Sprintf("LUT2_%d", i), par.SiteLUT2, i%2,
			[]string{"IN0", "IN1"}, []string{"OUT"}))
	}
	for i := 0; i < 8; i++ {
		d.lut3s = append(d.lut3s, newSite(fmt.Sprintf("LUT3_%d", i), par.SiteLUT3, i%2,
			[]string{"IN0", "IN1", "IN2"}, []string{"OUT"}))
	}
	for i := 0; i < 4; i++ {
		d.lut4s = append(d.lut4s, newSite(fmt.Sprintf("LUT4_%d", i), par.SiteLUT4, i%2,
			[]string{"IN0", "IN1", "IN2", "IN3"}, []string{"OUT"}))
	}

	for i := 0; i < 2; i++ {
		d.inverters = append(d.inverters, newSite(fmt.Sprintf("INV_%d", i), par.SiteINV, i%2,
			[]string{"IN"}, []string{"OUT"}))
	}
	d.shregs = append(d.shregs, newSite("SHREG_0", par.SiteSHREG, 0,
		[]string{"IN", "CLK", "RST"}, []string{"OUT"}))

	for i := 0; i < 6; i++ {
		d.vrefs = append(d.vrefs, newSite(fmt.Sprintf("VREF_%d", i), par.SiteVREF, 1,
			nil, []string{"VOUT"}))
	}
	for i := 0; i < 6; i++ {
		d.acmps = append(d.acmps, newSite(fmt.Sprintf("ACMP_%d", i), par.SiteACMP, 1,
			[]string{"VIN", "VREF"}, []string{"OUT"}))
	}
	for i := 0; i < 2; i++ {
		din := make([]string, 8)
		for bit := range din {
			din[bit] = fmt.Sprintf("DIN[%d]", bit)
		}
		d.dacs = append(d.dacs, newSite(fmt.Sprintf("DAC_%d", i), par.SiteDAC, 1,
			din, []string{"VOUT"}))
	}

	for i := 0; i < 8; i++ {
		d.flipflops = append(d.flipflops, newFlipflop(fmt.Sprintf("DFF_%d", i), i%2, i%3 == 0))
	}

	for i := 0; i < 10; i++ {
		depth := 8
		if i%3 == 0 {
			depth = 14
		}
		fsm := i%2 == 0
		d.counters = append(d.counters, newCounter(fmt.Sprintf("COUNT_%d", i), i%2, depth, fsm))
	}

	d.abuf = newSite("ABUF", par.SiteABUF, 1, []string{"IN"}, []string{"OUT"})
	d.bandgap = newSite("BANDGAP", par.SiteBANDGAP, 1, nil, []string{"OUT"})
	d.lfosc = newSite("LFOSC", par.SiteLFOSC, 0, nil, []string{"CLKOUT"})
	d.pga = newSite("PGA", par.SitePGA, 1, []string{"VIN_P", "VIN_N", "VIN_SEL"}, []string{"VOUT"})
	d.por = newSite("POR", par.SitePOR, 0, nil, []string{"OUT"})
	d.rcosc = newSite("RCOSC", par.SiteRCOSC, 0, nil, []string{"CLKOUT", "CLKOUT_PREDIV"})
	d.ringosc = newSite("RINGOSC", par.SiteRINGOSC, 0, nil, []string{"CLKOUT", "CLKOUT_PREDIV"})
	d.sysreset = newSite("SYSRESET", par.SiteSYSRESET, 0, []string{"RST"}, nil)
	d.vdd = newSite("VDD", par.SiteVDD, 0, nil, []string{"OUT"})
	d.vss = newSite("VSS", par.SiteVSS, 0, nil, []string{"OUT"})

	d.index()
	return d
}
