package graph

// DemoGraph returns the built-in evacuation scenario mirroring the server's
// default seed: two residential clusters feeding transition zones, two
// high-risk pockets, two control zones, three safe zones, and a single
// designated START/END pair. Used by tests and by the offline example; the
// live application always fetches the graph from the server.
func DemoGraph() *Graph {
	nodes := []Node{
		{ID: 0, X: 100, Y: 100, Zone: "START", RegionType: RegionResidential, Population: 15, Capacity: 50, Label: "START"},
		{ID: 1, X: 600, Y: 1200, Zone: "END", RegionType: RegionSafe, Population: 0, Capacity: 90, Label: "END"},

		{ID: 2, X: 100, Y: 200, Zone: "RES1", RegionType: RegionResidential, Population: 10, Capacity: 40, Label: "R1-2"},
		{ID: 3, X: 200, Y: 200, Zone: "RES1", RegionType: RegionResidential, Population: 12, Capacity: 45, Label: "R1-3"},
		{ID: 4, X: 100, Y: 300, Zone: "RES1", RegionType: RegionResidential, Population: 8, Capacity: 35, Label: "R1-4"},
		{ID: 5, X: 200, Y: 300, Zone: "RES1", RegionType: RegionResidential, Population: 11, Capacity: 42, Label: "R1-5"},
		{ID: 6, X: 150, Y: 400, Zone: "RES1", RegionType: RegionResidential, Population: 9, Capacity: 38, Label: "R1-6"},
		{ID: 7, X: 250, Y: 400, Zone: "RES1", RegionType: RegionResidential, Population: 10, Capacity: 40, Label: "R1-7"},

		{ID: 8, X: 800, Y: 150, Zone: "RES2", RegionType: RegionResidential, Population: 10, Capacity: 40, Label: "R2-8"},
		{ID: 9, X: 900, Y: 150, Zone: "RES2", RegionType: RegionResidential, Population: 12, Capacity: 45, Label: "R2-9"},
		{ID: 10, X: 850, Y: 250, Zone: "RES2", RegionType: RegionResidential, Population: 8, Capacity: 35, Label: "R2-10"},
		{ID: 11, X: 950, Y: 250, Zone: "RES2", RegionType: RegionResidential, Population: 11, Capacity: 42, Label: "R2-11"},
		{ID: 12, X: 800, Y: 350, Zone: "RES2", RegionType: RegionResidential, Population: 9, Capacity: 38, Label: "R2-12"},
		{ID: 13, X: 900, Y: 350, Zone: "RES2", RegionType: RegionResidential, Population: 10, Capacity: 40, Label: "R2-13"},

		{ID: 14, X: 400, Y: 200, Zone: "TRANS1", RegionType: RegionTransition, Population: 6, Capacity: 30, Label: "T1-14"},
		{ID: 15, X: 500, Y: 200, Zone: "TRANS1", RegionType: RegionTransition, Population: 7, Capacity: 32, Label: "T1-15"},
		{ID: 16, X: 600, Y: 200, Zone: "TRANS1", RegionType: RegionTransition, Population: 5, Capacity: 28, Label: "T1-16"},
		{ID: 17, X: 450, Y: 300, Zone: "TRANS1", RegionType: RegionTransition, Population: 6, Capacity: 30, Label: "T1-17"},
		{ID: 18, X: 550, Y: 300, Zone: "TRANS1", RegionType: RegionTransition, Population: 8, Capacity: 35, Label: "T1-18"},
		{ID: 19, X: 400, Y: 450, Zone: "TRANS2", RegionType: RegionTransition, Population: 6, Capacity: 30, Label: "T2-19"},
		{ID: 20, X: 500, Y: 450, Zone: "TRANS2", RegionType: RegionTransition, Population: 7, Capacity: 32, Label: "T2-20"},
		{ID: 21, X: 600, Y: 450, Zone: "TRANS2", RegionType: RegionTransition, Population: 6, Capacity: 30, Label: "T2-21"},
		{ID: 22, X: 500, Y: 550, Zone: "TRANS2", RegionType: RegionTransition, Population: 8, Capacity: 35, Label: "T2-22"},
		{ID: 23, X: 600, Y: 550, Zone: "TRANS2", RegionType: RegionTransition, Population: 7, Capacity: 32, Label: "T2-23"},

		{ID: 24, X: 150, Y: 550, Zone: "RISK1", RegionType: RegionHighRisk, Population: 20, Capacity: 15, Label: "HR1-24"},
		{ID: 25, X: 250, Y: 550, Zone: "RISK1", RegionType: RegionHighRisk, Population: 22, Capacity: 18, Label: "HR1-25"},
		{ID: 26, X: 150, Y: 650, Zone: "RISK1", RegionType: RegionHighRisk, Population: 19, Capacity: 14, Label: "HR1-26"},
		{ID: 27, X: 250, Y: 650, Zone: "RISK1", RegionType: RegionHighRisk, Population: 21, Capacity: 16, Label: "HR1-27"},
		{ID: 28, X: 200, Y: 750, Zone: "RISK1", RegionType: RegionHighRisk, Population: 20, Capacity: 15, Label: "HR1-28"},
		{ID: 29, X: 800, Y: 550, Zone: "RISK2", RegionType: RegionHighRisk, Population: 20, Capacity: 15, Label: "HR2-29"},
		{ID: 30, X: 900, Y: 550, Zone: "RISK2", RegionType: RegionHighRisk, Population: 22, Capacity: 18, Label: "HR2-30"},
		{ID: 31, X: 850, Y: 650, Zone: "RISK2", RegionType: RegionHighRisk, Population: 19, Capacity: 14, Label: "HR2-31"},
		{ID: 32, X: 950, Y: 650, Zone: "RISK2", RegionType: RegionHighRisk, Population: 21, Capacity: 16, Label: "HR2-32"},
		{ID: 33, X: 850, Y: 750, Zone: "RISK2", RegionType: RegionHighRisk, Population: 20, Capacity: 15, Label: "HR2-33"},
		{ID: 34, X: 950, Y: 750, Zone: "RISK2", RegionType: RegionHighRisk, Population: 18, Capacity: 12, Label: "HR2-34"},

		{ID: 35, X: 350, Y: 900, Zone: "CTRL1", RegionType: RegionConflict, Population: 0, Capacity: 18, Label: "C1-35"},
		{ID: 36, X: 450, Y: 900, Zone: "CTRL1", RegionType: RegionConflict, Population: 0, Capacity: 16, Label: "C1-36"},
		{ID: 37, X: 400, Y: 1000, Zone: "CTRL1", RegionType: RegionConflict, Population: 0, Capacity: 20, Label: "C1-37"},
		{ID: 38, X: 650, Y: 900, Zone: "CTRL2", RegionType: RegionConflict, Population: 0, Capacity: 18, Label: "C2-38"},
		{ID: 39, X: 750, Y: 900, Zone: "CTRL2", RegionType: RegionConflict, Population: 0, Capacity: 16, Label: "C2-39"},
		{ID: 40, X: 700, Y: 1000, Zone: "CTRL2", RegionType: RegionConflict, Population: 0, Capacity: 20, Label: "C2-40"},

		{ID: 41, X: 550, Y: 1100, Zone: "SAFE1", RegionType: RegionSafe, Population: 0, Capacity: 80, Label: "S1-41"},
		{ID: 42, X: 650, Y: 1100, Zone: "SAFE1", RegionType: RegionSafe, Population: 0, Capacity: 85, Label: "S1-42"},
		{ID: 43, X: 550, Y: 1200, Zone: "SAFE1", RegionType: RegionSafe, Population: 1, Capacity: 75, Label: "S1-43"},
		{ID: 44, X: 650, Y: 1200, Zone: "SAFE1", RegionType: RegionSafe, Population: 2, Capacity: 90, Label: "S1-44"},
		{ID: 45, X: 150, Y: 1100, Zone: "SAFE2", RegionType: RegionSafe, Population: 0, Capacity: 70, Label: "S2-45"},
		{ID: 46, X: 250, Y: 1100, Zone: "SAFE2", RegionType: RegionSafe, Population: 1, Capacity: 75, Label: "S2-46"},
		{ID: 47, X: 200, Y: 1200, Zone: "SAFE2", RegionType: RegionSafe, Population: 2, Capacity: 80, Label: "S2-47"},
		{ID: 48, X: 850, Y: 1100, Zone: "SAFE3", RegionType: RegionSafe, Population: 0, Capacity: 75, Label: "S3-48"},
		{ID: 49, X: 950, Y: 1100, Zone: "SAFE3", RegionType: RegionSafe, Population: 1, Capacity: 80, Label: "S3-49"},
		{ID: 50, X: 900, Y: 1200, Zone: "SAFE3", RegionType: RegionSafe, Population: 2, Capacity: 85, Label: "S3-50"},
	}

	type seedEdge struct {
		from, to   NodeID
		cost, risk float64
	}
	seeds := []seedEdge{
		{0, 2, 2.0, 1.0}, {0, 3, 2.0, 1.0},

		{2, 3, 2.0, 1.0}, {2, 4, 2.0, 1.0}, {3, 5, 2.0, 1.0}, {4, 5, 2.0, 1.0},
		{4, 6, 2.0, 1.0}, {5, 7, 2.0, 1.0}, {6, 7, 2.0, 1.0},

		{8, 9, 2.0, 1.0}, {8, 10, 2.0, 1.0}, {9, 11, 2.0, 1.0}, {10, 11, 2.0, 1.0},
		{10, 12, 2.0, 1.0}, {11, 13, 2.0, 1.0}, {12, 13, 2.0, 1.0},

		{14, 15, 3.0, 1.5}, {15, 16, 3.0, 1.5}, {14, 17, 3.0, 1.5}, {15, 17, 3.0, 1.5},
		{15, 18, 3.0, 1.5}, {16, 18, 3.0, 1.5}, {17, 18, 3.0, 1.5},

		{19, 20, 3.0, 1.5}, {20, 21, 3.0, 1.5}, {19, 22, 3.0, 1.5}, {20, 22, 3.0, 1.5},
		{21, 23, 3.0, 1.5}, {22, 23, 3.0, 1.5},

		{5, 14, 3.0, 1.4}, {7, 17, 3.0, 1.4}, {8, 16, 3.0, 1.4}, {12, 18, 3.0, 1.4},
		{6, 19, 3.0, 1.4}, {13, 21, 3.0, 1.4},

		{24, 25, 7.0, 4.5}, {24, 26, 7.0, 4.5}, {25, 27, 7.0, 4.5}, {26, 27, 7.0, 4.5},
		{26, 28, 7.0, 4.5}, {27, 28, 7.0, 4.5},

		{29, 30, 7.0, 4.5}, {29, 31, 7.0, 4.5}, {30, 32, 7.0, 4.5}, {31, 32, 7.0, 4.5},
		{31, 33, 7.0, 4.5}, {32, 34, 7.0, 4.5}, {33, 34, 7.0, 4.5},

		{17, 24, 5.0, 3.5}, {18, 25, 5.0, 3.5}, {18, 29, 5.0, 3.5}, {19, 26, 5.0, 3.5},
		{22, 27, 5.0, 3.5}, {23, 32, 5.0, 3.5}, {21, 30, 5.0, 3.5},

		{35, 36, 6.0, 5.0}, {35, 37, 6.0, 5.0}, {36, 37, 6.0, 5.0},
		{38, 39, 6.0, 5.0}, {38, 40, 6.0, 5.0}, {39, 40, 6.0, 5.0},

		{27, 36, 8.0, 5.2}, {33, 38, 8.0, 5.2},

		{41, 42, 1.0, 0.8}, {41, 43, 1.0, 0.8}, {42, 44, 1.0, 0.8}, {43, 44, 1.0, 0.8},
		{45, 46, 1.0, 0.8}, {45, 47, 1.0, 0.8}, {46, 47, 1.0, 0.8},
		{48, 49, 1.0, 0.8}, {48, 50, 1.0, 0.8}, {49, 50, 1.0, 0.8},

		{28, 45, 7.0, 3.5}, {27, 41, 7.0, 3.5}, {25, 46, 8.0, 3.7},
		{33, 48, 7.0, 3.5}, {34, 49, 7.0, 3.5},

		{43, 1, 1.0, 0.5}, {44, 1, 1.0, 0.5},
	}

	// Every seed edge is bidirectional on the wire.
	edges := make([]Edge, 0, len(seeds)*2)
	for _, s := range seeds {
		edges = append(edges,
			Edge{From: s.from, To: s.to, Cost: s.cost, Risk: s.risk},
			Edge{From: s.to, To: s.from, Cost: s.cost, Risk: s.risk},
		)
	}

	return &Graph{Nodes: nodes, Edges: edges, Start: 0, End: 1}
}
