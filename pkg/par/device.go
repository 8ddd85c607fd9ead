package par

// DeviceSite is the shape a physical site payload must satisfy so the
// device-graph builder can wire it up (spec §3, §6 "Inputs consumed
// from the device collaborator"). Concrete implementations live
// outside this package (see pkg/devicedesc); the builder only depends
// on this interface.
type DeviceSite interface {
	// Kind identifies which closed-enumeration site kind this is.
	Kind() SiteKind
	// InputPorts and OutputPorts are the routable terminal names.
	InputPorts() []string
	OutputPorts() []string
	// Matrix identifies which of the two switching fabrics this site
	// belongs to (0 or 1).
	Matrix() int
	// SetNode records the back-reference to this site's device-graph
	// node, written once at construction (spec §9).
	SetNode(*Node)
	// Node returns the previously-set back-reference, or nil.
	Node() *Node
}

// IOBSite extends DeviceSite with the attributes specific to I/O
// blocks: whether the buffer is bidirectional-capable ("type A"),
// whether it is input-only, and its physical pin number.
type IOBSite interface {
	DeviceSite
	IsTypeA() bool
	IsInputOnly() bool
	PinNumber() int
}

// FlipflopSite extends DeviceSite with set/reset capability.
type FlipflopSite interface {
	DeviceSite
	HasSetReset() bool
}

// CounterSite extends DeviceSite with depth and FSM capability.
type CounterSite interface {
	DeviceSite
	Depth() int // 8 or 14
	HasFSM() bool
}

// DeviceDescriptor is the full shape the device-graph builder needs
// from the upstream device collaborator (spec §6). Every accessor
// returns sites in a stable, caller-defined order — that order becomes
// device-graph node order.
type DeviceDescriptor interface {
	Part() PartID

	IOBs() []IOBSite
	LUT2s() []DeviceSite
	LUT3s() []DeviceSite
	LUT4s() []DeviceSite
	Inverters() []DeviceSite
	ShiftRegisters() []DeviceSite
	Vrefs() []DeviceSite
	Comparators() []DeviceSite
	DACs() []DeviceSite
	Flipflops() []FlipflopSite
	Counters() []CounterSite

	// Singleton hard-IP accessors. Each returns nil if the device
	// variant lacks that block.
	Abuf() DeviceSite
	Bandgap() DeviceSite
	LFOscillator() DeviceSite
	PGA() DeviceSite
	PowerOnReset() DeviceSite
	RCOscillator() DeviceSite
	RingOscillator() DeviceSite
	SystemReset() DeviceSite
	VDD() DeviceSite
	VSS() DeviceSite

	// IOBByPin returns the IOB site at the given physical pin number,
	// or nil. Used only by the SLG46620 dedicated-edge table, which
	// references specific pins by number.
	IOBByPin(pin int) IOBSite
}
