package chipdb

// Module is a hierarchical archetype: it owns its own ordered pin list
// (mirrored by any Instance referencing it) and, when fully elaborated,
// a concrete Netlist of its own. A Module with a nil Netlist is an
// abstract/blackbox archetype: it can still be instantiated and wired
// at the pin level but contributes no internal structure to any pass
// that walks hierarchy.
type Module struct {
	pinTable

	Name    string
	Netlist *Netlist
}

// GetName implements Named.
func (m *Module) GetName() string { return m.Name }

// InstanceArchetype identifies what kind of entity an Instance was
// stamped from.
type InstanceArchetype int

const (
	ArchetypeAbstract InstanceArchetype = iota
	ArchetypeCell
	ArchetypeModule
)

// PlacementStatus tracks where an Instance stands in the place/route
// flow.
type PlacementStatus int

const (
	Unplaced PlacementStatus = iota
	Placed
	PlacedAndFixed
	Ignore
)

// Orientation is one of the eight standard-cell mirror/rotate states.
type Orientation int

const (
	OrientN Orientation = iota
	OrientS
	OrientE
	OrientW
	OrientFN
	OrientFS
	OrientFE
	OrientFW
)

// pinSlot is one instance pin's binding: which net (if any) it connects
// to. Index into Instance.pinSlots mirrors the owning archetype's pin
// index.
type pinSlot struct {
	net ObjectKey // ObjectKeyNotFound if unconnected
}

// Instance is one placed (or not-yet-placed) occurrence of a Cell or
// Module archetype within a Netlist.
type Instance struct {
	Name      string
	Archetype InstanceArchetype

	// CellKey/ModuleKey resolves the archetype; exactly one is
	// meaningful, selected by Archetype. The Netlist resolves it only
	// through the archetypePins callback given to NewNetlist.
	CellKey   ObjectKey
	ModuleKey ObjectKey

	Position    Coord
	Orientation Orientation
	Status      PlacementStatus

	pinSlots []pinSlot
}

// GetName implements Named.
func (i *Instance) GetName() string { return i.Name }

// NumPinSlots returns the number of pin-connection slots on this
// instance, mirroring its archetype's pin count.
func (i *Instance) NumPinSlots() int { return len(i.pinSlots) }

// PinNet reports the net key bound to pin slot idx, or
// ObjectKeyNotFound if unconnected.
func (i *Instance) PinNet(idx int) (ObjectKey, bool) {
	if idx < 0 || idx >= len(i.pinSlots) {
		return ObjectKeyNotFound, false
	}
	return i.pinSlots[idx].net, true
}

// Net is a single equipotential wiring net: a named, weighted
// collection of (instance, pin index) endpoints.
type Net struct {
	Name        string
	IsClockNet  bool
	Weight      float64
	connections []netEndpoint
}

// netEndpoint is one (instance, pin) pair bound to a Net.
type netEndpoint struct {
	instance ObjectKey
	pinIndex int
}

// GetName implements Named.
func (n *Net) GetName() string { return n.Name }

// NumConnections returns the number of endpoints on this net.
func (n *Net) NumConnections() int { return len(n.connections) }

// Connection returns the idx-th endpoint's instance key and pin index.
func (n *Net) Connection(idx int) (ObjectKey, int, bool) {
	if idx < 0 || idx >= len(n.connections) {
		return ObjectKeyNotFound, -1, false
	}
	e := n.connections[idx]
	return e.instance, e.pinIndex, true
}

func (n *Net) indexOf(instKey ObjectKey, pinIndex int) int {
	for i, e := range n.connections {
		if e.instance == instKey && e.pinIndex == pinIndex {
			return i
		}
	}
	return -1
}

func (n *Net) removeConnectionAt(i int) {
	n.connections = append(n.connections[:i], n.connections[i+1:]...)
}

// Netlist is a flat instances+nets graph: the elaborated circuit body
// of a Module, or the design's top-level netlist. It does not itself
// resolve Cell/Module archetypes; that is done against whichever
// library containers the caller threads through (Design, typically).
type Netlist struct {
	Name string

	Instances *Container[*Instance]
	Nets      *Container[*Net]

	// archetypePins resolves an instance's archetype to its pin count,
	// so AddInstance can size pinSlots correctly without importing a
	// concrete Design type (keeps Netlist usable standalone, e.g. for a
	// Module body built before its owning Design exists).
	archetypePins func(InstanceArchetype, ObjectKey) (int, error)
}

// GetName implements Named.
func (nl *Netlist) GetName() string { return nl.Name }

// NewNetlist returns an empty Netlist. archetypePins resolves the pin
// count of an instance's Cell or Module archetype; it is called once,
// at AddInstance time, to size the instance's pin-connection slots.
func NewNetlist(archetypePins func(InstanceArchetype, ObjectKey) (int, error)) *Netlist {
	return &Netlist{
		Instances:     NewContainer[*Instance](),
		Nets:          NewContainer[*Net](),
		archetypePins: archetypePins,
	}
}

// AddInstance stamps a new Instance of the given archetype and adds it
// to the netlist, with pin slots sized to the archetype's pin count.
func (nl *Netlist) AddInstance(name string, archetype InstanceArchetype, archetypeKey ObjectKey) (ObjectKey, error) {
	numPins, err := nl.archetypePins(archetype, archetypeKey)
	if err != nil {
		return ObjectKeyNotFound, err
	}
	inst := &Instance{
		Name:      name,
		Archetype: archetype,
		Status:    Unplaced,
		pinSlots:  make([]pinSlot, numPins),
	}
	switch archetype {
	case ArchetypeCell:
		inst.CellKey = archetypeKey
	case ArchetypeModule:
		inst.ModuleKey = archetypeKey
	}
	for i := range inst.pinSlots {
		inst.pinSlots[i].net = ObjectKeyNotFound
	}
	return nl.Instances.Add(inst)
}

// RemoveInstance removes an instance and tears down every net
// connection it held, so no Net is left referencing a retired
// instance key.
func (nl *Netlist) RemoveInstance(instKey ObjectKey) error {
	inst, ok := nl.Instances.Lookup(instKey)
	if !ok {
		return ErrNotFound
	}
	for pinIdx, slot := range inst.pinSlots {
		if slot.net == ObjectKeyNotFound {
			continue
		}
		if err := nl.Disconnect(instKey, pinIdx); err != nil {
			return err
		}
	}
	nl.Instances.Remove(instKey)
	return nil
}

// AddNet adds an empty net to the netlist.
func (nl *Netlist) AddNet(name string, weight float64, isClockNet bool) (ObjectKey, error) {
	return nl.Nets.Add(&Net{Name: name, Weight: weight, IsClockNet: isClockNet})
}

// RemoveNet removes a net and clears every instance pin slot that
// referred to it, so no Instance is left pointing at a retired net
// key.
func (nl *Netlist) RemoveNet(netKey ObjectKey) error {
	net, ok := nl.Nets.Lookup(netKey)
	if !ok {
		return ErrNotFound
	}
	for _, e := range net.connections {
		inst, ok := nl.Instances.Lookup(e.instance)
		if !ok {
			continue
		}
		inst.pinSlots[e.pinIndex].net = ObjectKeyNotFound
	}
	nl.Nets.Remove(netKey)
	return nil
}

// Connect binds instance pin (instKey, pinIndex) to net netKey. Fails
// with ErrAlreadyConnected if the slot already carries a different net;
// calling Connect again with the same net is a no-op success.
// Connect mirrors the edge into both the Net's endpoint list and the
// Instance's pin slot before either container emits ContentsChanged, so
// observers never see a half-updated connection.
func (nl *Netlist) Connect(instKey ObjectKey, pinIndex int, netKey ObjectKey) error {
	inst, ok := nl.Instances.Lookup(instKey)
	if !ok {
		return ErrNotFound
	}
	if pinIndex < 0 || pinIndex >= len(inst.pinSlots) {
		return ErrPinIndexOutOfRange
	}
	net, ok := nl.Nets.Lookup(netKey)
	if !ok {
		return ErrNotFound
	}

	if existing := inst.pinSlots[pinIndex].net; existing != ObjectKeyNotFound {
		if existing == netKey {
			return nil
		}
		return ErrAlreadyConnected
	}

	inst.pinSlots[pinIndex].net = netKey
	net.connections = append(net.connections, netEndpoint{instance: instKey, pinIndex: pinIndex})

	nl.Instances.Touch(instKey)
	nl.Nets.Touch(netKey)
	return nil
}

// Disconnect unbinds instance pin (instKey, pinIndex) from whatever net
// it carries. ErrNotConnected if the slot is already empty.
func (nl *Netlist) Disconnect(instKey ObjectKey, pinIndex int) error {
	inst, ok := nl.Instances.Lookup(instKey)
	if !ok {
		return ErrNotFound
	}
	if pinIndex < 0 || pinIndex >= len(inst.pinSlots) {
		return ErrPinIndexOutOfRange
	}
	netKey := inst.pinSlots[pinIndex].net
	if netKey == ObjectKeyNotFound {
		return ErrNotConnected
	}
	net, ok := nl.Nets.Lookup(netKey)
	if !ok {
		return ErrNotFound
	}

	if i := net.indexOf(instKey, pinIndex); i >= 0 {
		net.removeConnectionAt(i)
	}
	inst.pinSlots[pinIndex].net = ObjectKeyNotFound

	nl.Instances.Touch(instKey)
	nl.Nets.Touch(netKey)
	return nil
}
