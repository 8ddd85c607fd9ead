package devicedesc

import "github.com/gp4par/gp4par/pkg/par"

// Device is a concrete par.DeviceDescriptor: an in-memory catalog of
// every physical site on one part, built once by NewSLG46620 or by
// Loader.Load and then handed to par.BuildDeviceGraph.
type Device struct {
	part par.PartID

	iobs      []par.IOBSite
	lut2s     []par.DeviceSite
	lut3s     []par.DeviceSite
	lut4s     []par.DeviceSite
	inverters []par.DeviceSite
	shregs    []par.DeviceSite
	vrefs     []par.DeviceSite
	acmps     []par.DeviceSite
	dacs      []par.DeviceSite
	flipflops []par.FlipflopSite
	counters  []par.CounterSite

	abuf     par.DeviceSite
	bandgap  par.DeviceSite
	lfosc    par.DeviceSite
	pga      par.DeviceSite
	por      par.DeviceSite
	rcosc    par.DeviceSite
	ringosc  par.DeviceSite
	sysreset par.DeviceSite
	vdd      par.DeviceSite
	vss      par.DeviceSite

	iobByPin map[int]par.IOBSite
}

func (d *Device) Part() par.PartID                { return d.part }
func (d *Device) IOBs() []par.IOBSite              { return d.iobs }
func (d *Device) LUT2s() []par.DeviceSite          { return d.lut2s }
func (d *Device) LUT3s() []par.DeviceSite          { return d.lut3s }
func (d *Device) LUT4s() []par.DeviceSite          { return d.lut4s }
func (d *Device) Inverters() []par.DeviceSite      { return d.inverters }
func (d *Device) ShiftRegisters() []par.DeviceSite { return d.shregs }
func (d *Device) Vrefs() []par.DeviceSite          { return d.vrefs }
func (d *Device) Comparators() []par.DeviceSite    { return d.acmps }
func (d *Device) DACs() []par.DeviceSite           { return d.dacs }
func (d *Device) Flipflops() []par.FlipflopSite    { return d.flipflops }
func (d *Device) Counters() []par.CounterSite      { return d.counters }

func (d *Device) Abuf() par.DeviceSite           { return d.abuf }
func (d *Device) Bandgap() par.DeviceSite        { return d.bandgap }
func (d *Device) LFOscillator() par.DeviceSite   { return d.lfosc }
func (d *Device) PGA() par.DeviceSite            { return d.pga }
func (d *Device) PowerOnReset() par.DeviceSite   { return d.por }
func (d *Device) RCOscillator() par.DeviceSite   { return d.rcosc }
func (d *Device) RingOscillator() par.DeviceSite { return d.ringosc }
func (d *Device) SystemReset() par.DeviceSite    { return d.sysreset }
func (d *Device) VDD() par.DeviceSite            { return d.vdd }
func (d *Device) VSS() par.DeviceSite            { return d.vss }

func (d *Device) IOBByPin(pin int) par.IOBSite {
	return d.iobByPin[pin]
}

// index rebuilds iobByPin from iobs. Called once after construction,
// whether the device came from NewSLG46620 or a Loader.
func (d *Device) index() {
	d.iobByPin = make(map[int]par.IOBSite, len(d.iobs))
	for _, iob := range d.iobs {
		d.iobByPin[iob.PinNumber()] = iob
	}
}
