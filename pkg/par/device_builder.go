package par

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// BuildDeviceGraph instantiates one device-graph node per physical
// site, assigns primary/alternate labels per the substitution rules
// (spec §4.3.2), and enumerates routing edges: fabric (dense, O(n²))
// plus dedicated (sparse, device-variant-specific) (spec §4.3.3-4).
//
// reg must already be Bootstrap()-ed (Table D labels allocated) before
// this is called; BuildGraphs does that.
func BuildDeviceGraph(device DeviceDescriptor, reg *Registry, log *logrus.Entry) *Graph {
	g := &Graph{}

	ibuf, _ := reg.Resolve("GP_IBUF")
	obuf, _ := reg.Resolve("GP_OBUF")
	iobuf, _ := reg.Resolve("GP_IOBUF")
	for _, iob := range device.IOBs() {
		var n *Node
		switch {
		case iob.IsTypeA() && !iob.IsInputOnly():
			n = g.NewNode(iobuf, iob)
			n.AddAlternateLabel(obuf)
			n.AddAlternateLabel(ibuf)
		case !iob.IsInputOnly():
			n = g.NewNode(obuf, iob)
			n.AddAlternateLabel(ibuf)
		default:
			n = g.NewNode(ibuf, iob)
		}
		iob.SetNode(n)
	}

	lut2, _ := reg.Resolve("GP_2LUT")
	lut3, _ := reg.Resolve("GP_3LUT")
	lut4, _ := reg.Resolve("GP_4LUT")
	for _, s := range device.LUT2s() {
		n := g.NewNode(lut2, s)
		s.SetNode(n)
	}
	for _, s := range device.LUT3s() {
		n := g.NewNode(lut3, s)
		n.AddAlternateLabel(lut2)
		s.SetNode(n)
	}
	for _, s := range device.LUT4s() {
		n := g.NewNode(lut4, s)
		n.AddAlternateLabel(lut3)
		n.AddAlternateLabel(lut2)
		s.SetNode(n)
	}

	inv, _ := reg.Resolve("GP_INV")
	for _, s := range device.Inverters() {
		n := g.NewNode(inv, s)
		s.SetNode(n)
	}

	shreg, _ := reg.Resolve("GP_SHREG")
	for _, s := range device.ShiftRegisters() {
		n := g.NewNode(shreg, s)
		s.SetNode(n)
	}

	vref, _ := reg.Resolve("GP_VREF")
	for _, s := range device.Vrefs() {
		n := g.NewNode(vref, s)
		s.SetNode(n)
	}

	acmp, _ := reg.Resolve("GP_ACMP")
	for _, s := range device.Comparators() {
		n := g.NewNode(acmp, s)
		s.SetNode(n)
	}

	dac, _ := reg.Resolve("GP_DAC")
	for _, s := range device.DACs() {
		n := g.NewNode(dac, s)
		s.SetNode(n)
	}

	dff, _ := reg.Resolve("GP_DFF")
	dffsr, _ := reg.Resolve("GP_DFFSR")
	for _, ff := range device.Flipflops() {
		if ff.HasSetReset() {
			n := g.NewNode(dffsr, ff)
			// Legal to map a plain DFF onto a DFFSR site.
			n.AddAlternateLabel(dff)
			ff.SetNode(n)
		} else {
			n := g.NewNode(dff, ff)
			ff.SetNode(n)
		}
	}

	makeSingle := func(canonicalName string, s DeviceSite) {
		if s == nil {
			return
		}
		label, _ := reg.Resolve(canonicalName)
		n := g.NewNode(label, s)
		s.SetNode(n)
	}
	makeSingle("GP_ABUF", device.Abuf())
	makeSingle("GP_BANDGAP", device.Bandgap())
	makeSingle("GP_LFOSC", device.LFOscillator())
	makeSingle("GP_PGA", device.PGA())
	makeSingle("GP_POR", device.PowerOnReset())
	makeSingle("GP_RCOSC", device.RCOscillator())
	makeSingle("GP_RINGOSC", device.RingOscillator())
	makeSingle("GP_SYSRESET", device.SystemReset())
	makeSingle("GP_VDD", device.VDD())
	makeSingle("GP_VSS", device.VSS())

	count8, _ := reg.Resolve("GP_COUNT8")
	count8adv, _ := reg.Resolve("GP_COUNT8_ADV")
	count14, _ := reg.Resolve("GP_COUNT14")
	count14adv, _ := reg.Resolve("GP_COUNT14_ADV")
	for _, c := range device.Counters() {
		var n *Node
		switch {
		case c.Depth() == 14 && c.HasFSM():
			n = g.NewNode(count14adv, c)
			// COUNT8 and COUNT14 may both be mapped onto a COUNT14_ADV
			// site. COUNT8_ADV may NOT: its up-count overflow semantics
			// differ from COUNT14_ADV's.
			n.AddAlternateLabel(count8)
			n.AddAlternateLabel(count14)
		case c.Depth() == 14:
			n = g.NewNode(count14, c)
			n.AddAlternateLabel(count8)
		case c.HasFSM():
			n = g.NewNode(count8adv, c)
			n.AddAlternateLabel(count8)
		default:
			n = g.NewNode(count8, c)
		}
		c.SetNode(n)
	}

	if log != nil {
		log.WithField("nodes", len(g.Nodes)).Debug("device graph nodes created")
	}

	addFabricEdges(g)
	addDedicatedEdges(g, device, log)

	return g
}

// addFabricEdges connects every ordered pair of distinct device nodes
// through every (output port, input port) pair. This is the O(n²)
// abstraction of the general routing fabric: physical routability is
// decided later by the bitstream emitter using the matrix field, not
// here (spec §4.3.3).
func addFabricEdges(g *Graph) {
	for _, x := range g.Nodes {
		xs, ok := x.Payload.(DeviceSite)
		if !ok {
			continue
		}
		for _, srcPort := range xs.OutputPorts() {
			for _, y := range g.Nodes {
				if x == y {
					continue
				}
				ys, ok := y.Payload.(DeviceSite)
				if !ok {
					continue
				}
				for _, dstPort := range ys.InputPorts() {
					x.AddEdge(srcPort, y, dstPort, "")
				}
			}
		}
	}
}

// addDedicatedEdges appends the hand-enumerated dedicated routing
// edges for part SLG46620 (spec §4.3.4, Table E). Other parts get no
// dedicated edges — fabric edges only.
func addDedicatedEdges(g *Graph, device DeviceDescriptor, log *logrus.Entry) {
	if device.Part() != PartSLG46620 {
		return
	}

	lfosc := device.LFOscillator()
	rosc := device.RingOscillator()
	rcosc := device.RCOscillator()
	if lfosc == nil || rosc == nil || rcosc == nil {
		if log != nil {
			log.Warn("SLG46620 dedicated edges: oscillator block missing, skipping clock edges")
		}
	} else {
		counters := device.Counters()
		for _, c := range counters {
			n := c.Node()
			if n == nil {
				continue
			}
			// TODO: other clock sources.
			lfosc.Node().AddEdge("CLKOUT", n, "CLK", "")
			rosc.Node().AddEdge("CLKOUT_PREDIV", n, "CLK", "")
			rcosc.Node().AddEdge("CLKOUT_PREDIV", n, "CLK", "")
		}
	}

	vdd := device.VDD()
	gnd := device.VSS()

	if sysrst := device.SystemReset(); sysrst != nil {
		if pin2 := device.IOBByPin(2); pin2 != nil {
			pin2.Node().AddEdge("OUT", sysrst.Node(), "RST", "")
		}
		if gnd != nil {
			gnd.Node().AddEdge("OUT", sysrst.Node(), "RST", "")
		}
	}

	vrefs := device.Vrefs()
	if pin19 := device.IOBByPin(19); pin19 != nil {
		for i := 0; i < len(vrefs) && i < 2; i++ {
			vrefs[i].Node().AddEdge("VOUT", pin19.Node(), "IN", "")
		}
	}
	if pin18 := device.IOBByPin(18); pin18 != nil {
		for i := 2; i < len(vrefs) && i < 4; i++ {
			vrefs[i].Node().AddEdge("VOUT", pin18.Node(), "IN", "")
		}
	}

	acmps := device.Comparators()
	for _, acmp := range acmps {
		for _, vref := range vrefs {
			vref.Node().AddEdge("VOUT", acmp.Node(), "VREF", "")
		}
	}

	pga := device.PGA()
	abuf := device.Abuf()
	pin3 := device.IOBByPin(3)
	pin4 := device.IOBByPin(4)
	pin6 := device.IOBByPin(6)
	pin7 := device.IOBByPin(7)
	pin8 := device.IOBByPin(8)
	pin9 := device.IOBByPin(9)
	pin12 := device.IOBByPin(12)
	pin13 := device.IOBByPin(13)
	pin15 := device.IOBByPin(15)
	pin16 := device.IOBByPin(16)

	if pin6 != nil && abuf != nil {
		pin6.Node().AddEdge("OUT", abuf.Node(), "IN", "")
	}

	// Dedicated per-comparator analog input fan-in (Table E family (e)).
	// acmps[0] has no dedicated pin inputs beyond the shared set below.
	if len(acmps) > 1 {
		if pin12 != nil {
			pin12.Node().AddEdge("OUT", acmps[1].Node(), "VIN", "")
		}
		if pga != nil {
			pga.Node().AddEdge("VOUT", acmps[1].Node(), "VIN", "")
		}
	}
	if len(acmps) > 2 && pin13 != nil {
		pin13.Node().AddEdge("OUT", acmps[2].Node(), "VIN", "")
	}
	if len(acmps) > 3 {
		if pin15 != nil {
			pin15.Node().AddEdge("OUT", acmps[3].Node(), "VIN", "")
		}
		if pin13 != nil {
			pin13.Node().AddEdge("OUT", acmps[3].Node(), "VIN", "")
		}
	}
	if len(acmps) > 4 {
		if pin3 != nil {
			pin3.Node().AddEdge("OUT", acmps[4].Node(), "VIN", "")
		}
		if pin15 != nil {
			pin15.Node().AddEdge("OUT", acmps[4].Node(), "VIN", "")
		}
	}
	if len(acmps) > 5 && pin4 != nil {
		pin4.Node().AddEdge("OUT", acmps[5].Node(), "VIN", "")
	}

	// acmps[0..4] also share pin6 / VDD / ABUF as pre-gain-stage input.
	for i := 0; i < len(acmps) && i < 5; i++ {
		if pin6 != nil {
			pin6.Node().AddEdge("OUT", acmps[i].Node(), "VIN", "")
		}
		if vdd != nil {
			vdd.Node().AddEdge("OUT", acmps[i].Node(), "VIN", "")
		}
		if abuf != nil {
			abuf.Node().AddEdge("OUT", acmps[i].Node(), "VIN", "")
		}
	}

	if pga != nil {
		if vdd != nil {
			vdd.Node().AddEdge("OUT", pga.Node(), "VIN_P", "")
		}
		if pin8 != nil {
			pin8.Node().AddEdge("OUT", pga.Node(), "VIN_P", "")
		}
		if pin9 != nil {
			pin9.Node().AddEdge("OUT", pga.Node(), "VIN_N", "")
		}
		if gnd != nil {
			gnd.Node().AddEdge("OUT", pga.Node(), "VIN_N", "")
		}
		if pin16 != nil {
			pin16.Node().AddEdge("OUT", pga.Node(), "VIN_SEL", "")
		}
		if vdd != nil {
			vdd.Node().AddEdge("OUT", pga.Node(), "VIN_SEL", "")
		}
		if pin7 != nil {
			pga.Node().AddEdge("VOUT", pin7.Node(), "IN", "")
		}
	}

	for _, d := range device.DACs() {
		dn := d.Node()
		for bit := 0; bit < 8; bit++ {
			bitNet := dinBitLabel(bit)
			if vdd != nil {
				vdd.Node().AddEdge("OUT", dn, bitNet, "")
			}
			if gnd != nil {
				gnd.Node().AddEdge("OUT", dn, bitNet, "")
			}
		}
	}
}

func dinBitLabel(bit int) string {
	return fmt.Sprintf("DIN[%d]", bit)
}
