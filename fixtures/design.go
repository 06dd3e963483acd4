package fixtures

import (
	"fmt"

	"github.com/edacore/pnrcore/chipdb"
)

// Design bundles the minimal cell library a generator stamps instances
// from with the netlist it wires them into.
type Design struct {
	CellLib *chipdb.Container[*chipdb.Cell]
	Netlist *chipdb.Netlist
}

// bufPins is the pin index layout of the two-pin buffer archetype Chain
// and Star stamp instances from.
const (
	bufPinIn  = 0
	bufPinOut = 1
)

func newBufDesign() (*Design, chipdb.ObjectKey, error) {
	lib := chipdb.NewContainer[*chipdb.Cell]()
	cell := &chipdb.Cell{Name: "BUF", SizeX: 1000, SizeY: 1000}
	if _, err := cell.AddPin(chipdb.PinInfo{Name: "IN", IOType: chipdb.PinInput}); err != nil {
		return nil, chipdb.ObjectKeyNotFound, err
	}
	if _, err := cell.AddPin(chipdb.PinInfo{Name: "OUT", IOType: chipdb.PinOutput}); err != nil {
		return nil, chipdb.ObjectKeyNotFound, err
	}
	bufKey, err := lib.Add(cell)
	if err != nil {
		return nil, chipdb.ObjectKeyNotFound, err
	}

	d := &Design{CellLib: lib}
	d.Netlist = chipdb.NewNetlist(func(archetype chipdb.InstanceArchetype, key chipdb.ObjectKey) (int, error) {
		if archetype != chipdb.ArchetypeCell || key != bufKey {
			return 0, fmt.Errorf("fixtures: unknown archetype %v/%d", archetype, key)
		}
		return cell.NumPins(), nil
	})
	return d, bufKey, nil
}

// gridPins is the pin index layout of the four-pin mesh archetype Grid
// stamps instances from: one pin facing each compass direction.
const (
	gridPinN = 0
	gridPinS = 1
	gridPinE = 2
	gridPinW = 3
)

func newMeshDesign() (*Design, chipdb.ObjectKey, error) {
	lib := chipdb.NewContainer[*chipdb.Cell]()
	cell := &chipdb.Cell{Name: "MESH", SizeX: 1000, SizeY: 1000}
	for _, name := range []string{"N", "S", "E", "W"} {
		if _, err := cell.AddPin(chipdb.PinInfo{Name: name, IOType: chipdb.PinInOut}); err != nil {
			return nil, chipdb.ObjectKeyNotFound, err
		}
	}
	meshKey, err := lib.Add(cell)
	if err != nil {
		return nil, chipdb.ObjectKeyNotFound, err
	}

	d := &Design{CellLib: lib}
	d.Netlist = chipdb.NewNetlist(func(archetype chipdb.InstanceArchetype, key chipdb.ObjectKey) (int, error) {
		if archetype != chipdb.ArchetypeCell || key != meshKey {
			return 0, fmt.Errorf("fixtures: unknown archetype %v/%d", archetype, key)
		}
		return cell.NumPins(), nil
	})
	return d, meshKey, nil
}
