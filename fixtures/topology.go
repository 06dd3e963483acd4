package fixtures

import (
	"fmt"

	"github.com/edacore/pnrcore/chipdb"
)

func instName(i int) string { return fmt.Sprintf("inst%d", i) }
func netName(i int) string  { return fmt.Sprintf("net%d", i) }

// Chain builds a Design with n buffer instances wired OUT->IN in a
// single straight line: inst0.OUT -net0-> inst1.IN, inst1.OUT -net1->
// inst2.IN, and so on. Requires n >= 2.
func Chain(n int) (*Design, error) {
	if n < 2 {
		return nil, fmt.Errorf("fixtures: Chain requires n>=2, got %d", n)
	}
	d, bufKey, err := newBufDesign()
	if err != nil {
		return nil, err
	}

	instKeys := make([]chipdb.ObjectKey, n)
	for i := 0; i < n; i++ {
		key, err := d.Netlist.AddInstance(instName(i), chipdb.ArchetypeCell, bufKey)
		if err != nil {
			return nil, fmt.Errorf("fixtures: Chain: AddInstance(%s): %w", instName(i), err)
		}
		instKeys[i] = key
	}

	for i := 0; i < n-1; i++ {
		netKey, err := d.Netlist.AddNet(netName(i), 1.0, false)
		if err != nil {
			return nil, fmt.Errorf("fixtures: Chain: AddNet(%s): %w", netName(i), err)
		}
		if err := d.Netlist.Connect(instKeys[i], bufPinOut, netKey); err != nil {
			return nil, err
		}
		if err := d.Netlist.Connect(instKeys[i+1], bufPinIn, netKey); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Star builds a Design with one hub instance and n-1 leaf instances, all
// sharing a single net: hub.OUT drives every leaf.IN. Requires n >= 2.
func Star(n int) (*Design, error) {
	if n < 2 {
		return nil, fmt.Errorf("fixtures: Star requires n>=2, got %d", n)
	}
	d, bufKey, err := newBufDesign()
	if err != nil {
		return nil, err
	}

	hubKey, err := d.Netlist.AddInstance("hub", chipdb.ArchetypeCell, bufKey)
	if err != nil {
		return nil, err
	}
	netKey, err := d.Netlist.AddNet("spoke", 1.0, false)
	if err != nil {
		return nil, err
	}
	if err := d.Netlist.Connect(hubKey, bufPinOut, netKey); err != nil {
		return nil, err
	}

	for i := 1; i < n; i++ {
		leafKey, err := d.Netlist.AddInstance(instName(i), chipdb.ArchetypeCell, bufKey)
		if err != nil {
			return nil, err
		}
		if err := d.Netlist.Connect(leafKey, bufPinIn, netKey); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Grid builds a Design with rows*cols mesh instances arranged on a
// rectangular grid, each wired to its right and below neighbor by a
// dedicated two-pin net (E of (r,c) to W of (r,c+1); S of (r,c) to N of
// (r+1,c)). Requires rows >= 1, cols >= 1, rows*cols >= 2.
func Grid(rows, cols int) (*Design, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("fixtures: Grid requires rows*cols>=2, got %dx%d", rows, cols)
	}
	d, meshKey, err := newMeshDesign()
	if err != nil {
		return nil, err
	}

	keys := make([][]chipdb.ObjectKey, rows)
	for r := 0; r < rows; r++ {
		keys[r] = make([]chipdb.ObjectKey, cols)
		for c := 0; c < cols; c++ {
			name := fmt.Sprintf("cell_%d_%d", r, c)
			key, err := d.Netlist.AddInstance(name, chipdb.ArchetypeCell, meshKey)
			if err != nil {
				return nil, fmt.Errorf("fixtures: Grid: AddInstance(%s): %w", name, err)
			}
			keys[r][c] = key
		}
	}

	netSeq := 0
	nextNet := func() (chipdb.ObjectKey, error) {
		key, err := d.Netlist.AddNet(netName(netSeq), 1.0, false)
		netSeq++
		return key, err
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				netKey, err := nextNet()
				if err != nil {
					return nil, err
				}
				if err := d.Netlist.Connect(keys[r][c], gridPinE, netKey); err != nil {
					return nil, err
				}
				if err := d.Netlist.Connect(keys[r][c+1], gridPinW, netKey); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				netKey, err := nextNet()
				if err != nil {
					return nil, err
				}
				if err := d.Netlist.Connect(keys[r][c], gridPinS, netKey); err != nil {
					return nil, err
				}
				if err := d.Netlist.Connect(keys[r+1][c], gridPinN, netKey); err != nil {
					return nil, err
				}
			}
		}
	}
	return d, nil
}
