// Package builder assembles thermal networks from reusable constructors:
// uniform rods, slab meshes, layered wall assemblies, infiltration paths and
// complete single-zone house models.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     default node area, initial temperature, name
//     prefix and scheme, RNG, edge-area distribution, logger.
//   - Orchestration:
//     – BuildGraph:        new graph + constructors in order.
//     – Apply:             constructors against an existing graph.
//   - Constructors:
//     – Path, Grid:        indexed Free-node topologies.
//     – Layers:            series assembly with Parallel groups and Split slabs.
//     – Infiltration:      air exchange as a scaled-conductivity pseudo-node.
//   - Node-name schemes (NameFn): DefaultNameFn, ExcelColumnNameFn, LabelNameFn;
//     GridCellName and SplitNodeName give the names Grid and Layers produce.
//   - Edge-area distributions (AreaFn): ConstantAreaFn, UniformAreaFn,
//     NormalAreaFn (seeded via WithSeed/WithRand).
//   - House models: NewHouse(HouseSpec) and the presets FirstHouse, WallOnly,
//     WallAndCeiling, WallCeilingAndInfiltration, SolarHouse; layer presets
//     StudWall, SheetrockWall, FramedCeiling, InsulatedCeiling, SlabFloor.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (builderErrorf) wrapping package sentinels and,
//     where the core graph refused an insertion, the core sentinel too.
//   - Every created Free/Source node starts at the configured temperature;
//     physical plausibility is not checked.
//
// Example:
//
//	outside := core.NewFixed("outside", core.AirBulkMixed, 10, 20, core.Constant(273))
//	room := core.NewSource("room", core.AirBulkMixed, 2.5, 20, core.ConstantHeat(800))
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithInitialTemperature(290)},
//	    builder.Layers(outside, room, 20, builder.StudWall()...))
package builder
