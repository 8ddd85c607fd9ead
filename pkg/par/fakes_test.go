package par

// Fake collaborator implementations used across the par test suite.
// These are deliberately minimal — just enough to drive the builders —
// mirroring how a real device/netlist parser would supply these
// interfaces.

type fakeSite struct {
	kind   SiteKind
	in     []string
	out    []string
	matrix int
	node   *Node
	name   string
}

func (s *fakeSite) Kind() SiteKind        { return s.kind }
func (s *fakeSite) InputPorts() []string  { return s.in }
func (s *fakeSite) OutputPorts() []string { return s.out }
func (s *fakeSite) Matrix() int           { return s.matrix }
func (s *fakeSite) SetNode(n *Node)       { s.node = n }
func (s *fakeSite) Node() *Node           { return s.node }
func (s *fakeSite) DebugName() string     { return s.name }

type fakeIOB struct {
	fakeSite
	typeA      bool
	inputOnly  bool
	pin        int
}

func (s *fakeIOB) IsTypeA() bool     { return s.typeA }
func (s *fakeIOB) IsInputOnly() bool { return s.inputOnly }
func (s *fakeIOB) PinNumber() int    { return s.pin }

func newIOB(pin int, typeA, inputOnly bool) *fakeIOB {
	iob := &fakeIOB{typeA: typeA, inputOnly: inputOnly, pin: pin}
	iob.kind = SiteIOB
	switch {
	case typeA && !inputOnly:
		iob.in = []string{"IN"}
		iob.out = []string{"OUT"}
	case !inputOnly:
		iob.in = []string{"IN"}
	default:
		iob.out = []string{"OUT"}
	}
	return iob
}

type fakeFF struct {
	fakeSite
	setReset bool
}

func (f *fakeFF) HasSetReset() bool { return f.setReset }

func newFF(setReset bool) *fakeFF {
	f := &fakeFF{setReset: setReset}
	f.kind = SiteDFF
	f.in = []string{"D", "CLK"}
	f.out = []string{"Q"}
	return f
}

type fakeCounter struct {
	fakeSite
	depth int
	fsm   bool
}

func (c *fakeCounter) Depth() int  { return c.depth }
func (c *fakeCounter) HasFSM() bool { return c.fsm }

func newCounter(depth int, fsm bool) *fakeCounter {
	c := &fakeCounter{depth: depth, fsm: fsm}
	c.kind = SiteCount8
	c.in = []string{"CLK", "RST"}
	c.out = []string{"OUT"}
	return c
}

func newSite(kind SiteKind, in, out []string) *fakeSite {
	return &fakeSite{kind: kind, in: in, out: out}
}

// fakeDevice is a minimal DeviceDescriptor. Zero-value fields default
// to empty/absent, so tests only populate what they need.
type fakeDevice struct {
	part           PartID
	iobs           []IOBSite
	lut2s          []DeviceSite
	lut3s          []DeviceSite
	lut4s          []DeviceSite
	inverters      []DeviceSite
	shregs         []DeviceSite
	vrefs          []DeviceSite
	acmps          []DeviceSite
	dacs           []DeviceSite
	flipflops      []FlipflopSite
	counters       []CounterSite
	abuf           DeviceSite
	bandgap        DeviceSite
	lfosc          DeviceSite
	pga            DeviceSite
	por            DeviceSite
	rcosc          DeviceSite
	ringosc        DeviceSite
	sysreset       DeviceSite
	vdd            DeviceSite
	vss            DeviceSite
	iobByPin       map[int]IOBSite
}

func (d *fakeDevice) Part() PartID                  { return d.part }
func (d *fakeDevice) IOBs() []IOBSite                { return d.iobs }
func (d *fakeDevice) LUT2s() []DeviceSite            { return d.lut2s }
func (d *fakeDevice) LUT3s() []DeviceSite            { return d.lut3s }
func (d *fakeDevice) LUT4s() []DeviceSite            { return d.lut4s }
func (d *fakeDevice) Inverters() []DeviceSite        { return d.inverters }
func (d *fakeDevice) ShiftRegisters() []DeviceSite   { return d.shregs }
func (d *fakeDevice) Vrefs() []DeviceSite            { return d.vrefs }
func (d *fakeDevice) Comparators() []DeviceSite      { return d.acmps }
func (d *fakeDevice) DACs() []DeviceSite             { return d.dacs }
func (d *fakeDevice) Flipflops() []FlipflopSite      { return d.flipflops }
func (d *fakeDevice) Counters() []CounterSite        { return d.counters }
func (d *fakeDevice) Abuf() DeviceSite                { return d.abuf }
func (d *fakeDevice) Bandgap() DeviceSite             { return d.bandgap }
func (d *fakeDevice) LFOscillator() DeviceSite        { return d.lfosc }
func (d *fakeDevice) PGA() DeviceSite                 { return d.pga }
func (d *fakeDevice) PowerOnReset() DeviceSite        { return d.por }
func (d *fakeDevice) RCOscillator() DeviceSite        { return d.rcosc }
func (d *fakeDevice) RingOscillator() DeviceSite      { return d.ringosc }
func (d *fakeDevice) SystemReset() DeviceSite         { return d.sysreset }
func (d *fakeDevice) VDD() DeviceSite                 { return d.vdd }
func (d *fakeDevice) VSS() DeviceSite                 { return d.vss }
func (d *fakeDevice) IOBByPin(pin int) IOBSite {
	if d.iobByPin == nil {
		return nil
	}
	return d.iobByPin[pin]
}

// fakeCell is a minimal NetlistCell.
type fakeCell struct {
	name  string
	typ   string
	conns map[string][]string
	attrs map[string]string
	node  *Node
}

func (c *fakeCell) Name() string                  { return c.name }
func (c *fakeCell) Type() string                  { return c.typ }
func (c *fakeCell) Connections() map[string][]string { return c.conns }
func (c *fakeCell) Attributes() map[string]string { return c.attrs }
func (c *fakeCell) SetNode(n *Node)                { c.node = n }
func (c *fakeCell) Node() *Node                    { return c.node }

func newCell(name, typ string) *fakeCell {
	return &fakeCell{name: name, typ: typ, conns: map[string][]string{}, attrs: map[string]string{}}
}

// fakeNet is a minimal NetlistNet.
type fakeNet struct {
	name      string
	ports     []TopLevelPortRef
	nodePorts []CellPortRef
}

func (n *fakeNet) Name() string                { return n.name }
func (n *fakeNet) Ports() []TopLevelPortRef    { return n.ports }
func (n *fakeNet) NodePorts() []CellPortRef    { return n.nodePorts }

// fakeModule is a minimal NetlistModule. portDirs maps
// "CellType.PortName" to its direction; builtinPortDirs provides a
// built-in fallback for the primitive types these tests use, so
// individual tests need not repeat them.
type fakeModule struct {
	cells    []NetlistCell
	nets     []NetlistNet
	portDirs map[string]PortDirection
}

var builtinPortDirs = map[string]PortDirection{
	"GP_IBUF.IN":     DirInput,
	"GP_IBUF.OUT":    DirOutput,
	"GP_OBUF.IN":     DirInput,
	"GP_OBUF.OUT":    DirOutput,
	"GP_IOBUF.IN":    DirInput,
	"GP_IOBUF.OUT":   DirOutput,
	"GP_2LUT.OUT":    DirOutput,
	"GP_2LUT.IN0":    DirInput,
	"GP_2LUT.IN1":    DirInput,
	"GP_DFF.D":       DirInput,
	"GP_DFF.CLK":     DirInput,
	"GP_DFF.Q":       DirOutput,
	"GP_DFFSR.D":     DirInput,
	"GP_DFFSR.CLK":   DirInput,
	"GP_DFFSR.Q":     DirOutput,
}

func (m *fakeModule) Cells() []NetlistCell { return m.cells }
func (m *fakeModule) Nets() []NetlistNet   { return m.nets }
func (m *fakeModule) PortDirection(cellType, portName string) (PortDirection, bool) {
	key := cellType + "." + portName
	if m.portDirs != nil {
		if d, ok := m.portDirs[key]; ok {
			return d, true
		}
	}
	if d, ok := builtinPortDirs[key]; ok {
		return d, true
	}
	return 0, false
}

func newModule() *fakeModule {
	return &fakeModule{portDirs: map[string]PortDirection{}}
}

func testRegistry() *Registry {
	r := NewRegistry()
	r.Bootstrap()
	return r
}
