// Package integrate is the chipdb-importing glue between the chip
// database and the four algorithmic cores (partition, placer, cts,
// groute): it projects a live chipdb.Netlist into each core's derived
// working structure and writes each core's result back onto the same
// chipdb.Netlist.
//
// Purpose:
//   - ProjectPlacerNetlist/WriteBackPositions bridge chipdb and placer.
//   - ProjectPartitionContainer bridges chipdb and partition, applying
//     the pin-net and clock-net weight bonuses at projection time (the
//     bonuses are configuration of the projection, not of partition.Run
//     itself, since partition has no chipdb import to recognize a pin
//     or clock net from).
//   - ProjectClockNet/ApplyClockTree bridge chipdb and cts, rewiring
//     sinks onto newly inserted buffer instances as cts.InsertBuffers
//     requests them.
//   - ProjectRouteTerminals bridges chipdb and groute.
//
// Notes:
//   - Every projection iterates chipdb containers by first collecting
//     and sorting their keys: Container.Each/Keys document unspecified
//     (Go map) iteration order, and the node/terminal assignment order
//     here drives RNG consumption and tie-breaking downstream, so it
//     must be reproducible run to run.
package integrate
