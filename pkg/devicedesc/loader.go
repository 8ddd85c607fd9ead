package devicedesc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gp4par/gp4par/pkg/par"
)

// DeviceFile is the on-disk JSON description of a device variant
// (spec §6 "device collaborator"): a flat, declarative catalog the
// loader turns into live DeviceSite values.
type DeviceFile struct {
	Part string `json:"part"`

	IOBs []struct {
		Pin       int  `json:"pin"`
		Matrix    int  `json:"matrix"`
		TypeA     bool `json:"type_a"`
		InputOnly bool `json:"input_only"`
	} `json:"iobs"`

	LUT2Count int `json:"lut2_count"`
	LUT3Count int `json:"lut3_count"`
	LUT4Count int `json:"lut4_count"`

	Inverters      int `json:"inverters"`
	ShiftRegisters int `json:"shift_registers"`

	Flipflops []struct {
		Matrix   int  `json:"matrix"`
		SetReset bool `json:"set_reset"`
	} `json:"flipflops"`

	Counters []struct {
		Matrix int  `json:"matrix"`
		Depth  int  `json:"depth"`
		FSM    bool `json:"fsm"`
	} `json:"counters"`

	Vrefs        int `json:"vrefs"`
	Comparators  int `json:"comparators"`
	DACs         int `json:"dacs"`

	HasAbuf     bool `json:"has_abuf"`
	HasBandgap  bool `json:"has_bandgap"`
	HasLFOsc    bool `json:"has_lf_osc"`
	HasPGA      bool `json:"has_pga"`
	HasPOR      bool `json:"has_por"`
	HasRCOsc    bool `json:"has_rc_osc"`
	HasRingOsc  bool `json:"has_ring_osc"`
	HasSysReset bool `json:"has_sysreset"`
}

// Loader reads a DeviceFile from disk and builds a Device from it.
type Loader struct {
	path string
}

// NewLoader creates a loader for the device description at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the device description, returning the
// resulting Device.
func (l *Loader) Load() (*Device, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading device file %s: %w", l.path, err)
	}

	var df DeviceFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parsing device file %s: %w", l.path, err)
	}

	if df.Part == "" {
		return nil, fmt.Errorf("device file %s: part is required", l.path)
	}

	d := &Device{part: par.PartID(df.Part)}

	for _, iob := range df.IOBs {
		d.iobs = append(d.iobs, newIOB(fmt.Sprintf("P%d", iob.Pin), iob.Pin, iob.Matrix, iob.TypeA, iob.InputOnly))
	}
	for i := 0; i < df.LUT2Count; i++ {
		d.lut2s = append(d.lut2s, newSite(fmt.Sprintf("LUT2_%d", i), par.SiteLUT2, 0,
			[]string{"IN0", "IN1"}, []string{"OUT"}))
	}
	for i := 0; i < df.LUT3Count; i++ {
		d.lut3s = append(d.lut3s, newSite(fmt.Sprintf("LUT3_%d", i), par.SiteLUT3, 0,
			[]string{"IN0", "IN1", "IN2"}, []string{"OUT"}))
	}
	for i := 0; i < df.LUT4Count; i++ {
		d.lut4s = append(d.lut4s, newSite(fmt.Sprintf("LUT4_%d", i), par.SiteLUT4, 0,
			[]string{"IN0", "IN1", "IN2", "IN3"}, []string{"OUT"}))
	}
	for i := 0; i < df.Inverters; i++ {
		d.inverters = append(d.inverters, newSite(fmt.Sprintf("INV_%d", i), par.SiteINV, 0,
			[]string{"IN"}, []string{"OUT"}))
	}
	for i := 0; i < df.ShiftRegisters; i++ {
		d.shregs = append(d.shregs, newSite(fmt.Sprintf("SHREG_%d", i), par.SiteSHREG, 0,
			[]string{"IN", "CLK", "RST"}, []string{"OUT"}))
	}
	for i, ff := range df.Flipflops {
		d.flipflops = append(d.flipflops, newFlipflop(fmt.Sprintf("DFF_%d", i), ff.Matrix, ff.SetReset))
	}
	for i, c := range df.Counters {
		d.counters = append(d.counters, newCounter(fmt.Sprintf("COUNT_%d", i), c.Matrix, c.Depth, c.FSM))
	}
	for i := 0; i < df.Vrefs; i++ {
		d.vrefs = append(d.vrefs, newSite(fmt.Sprintf("VREF_%d", i), par.SiteVREF, 0, nil, []string{"VOUT"}))
	}
	for i := 0; i < df.Comparators; i++ {
		d.acmps = append(d.acmps, newSite(fmt.Sprintf("ACMP_%d", i), par.SiteACMP, 0,
			[]string{"VIN", "VREF"}, []string{"OUT"}))
	}
	for i := 0; i < df.DACs; i++ {
		din := make([]string, 8)
		for bit := range din {
			din[bit] = fmt.Sprintf("DIN[%d]", bit)
		}
		d.dacs = append(d.dacs, newSite(fmt.Sprintf("DAC_%d", i), par.SiteDAC, 0, din, []string{"VOUT"}))
	}

	if df.HasAbuf {
		d.abuf = newSite("ABUF", par.SiteABUF, 0, []string{"IN"}, []string{"OUT"})
	}
	if df.HasBandgap {
		d.bandgap = newSite("BANDGAP", par.SiteBANDGAP, 0, nil, []string{"OUT"})
	}
	if df.HasLFOsc {
		d.lfosc = newSite("LFOSC", par.SiteLFOSC, 0, nil, []string{"CLKOUT"})
	}
	if df.HasPGA {
		d.pga = newSite("PGA", par.SitePGA, 0, []string{"VIN_P", "VIN_N", "VIN_SEL"}, []string{"VOUT"})
	}
	if df.HasPOR {
		d.por = newSite("POR", par.SitePOR, 0, nil, []string{"OUT"})
	}
	if df.HasRCOsc {
		d.rcosc = newSite("RCOSC", par.SiteRCOSC, 0, nil, []string{"CLKOUT", "CLKOUT_PREDIV"})
	}
	if df.HasRingOsc {
		d.ringosc = newSite("RINGOSC", par.SiteRINGOSC, 0, nil, []string{"CLKOUT", "CLKOUT_PREDIV"})
	}
	if df.HasSysReset {
		d.sysreset = newSite("SYSRESET", par.SiteSYSRESET, 0, []string{"RST"}, nil)
	}
	// VDD/VSS are always present: every part has power rails.
	d.vdd = newSite("VDD", par.SiteVDD, 0, nil, []string{"OUT"})
	d.vss = newSite("VSS", par.SiteVSS, 0, nil, []string{"OUT"})

	d.index()
	return d, nil
}
