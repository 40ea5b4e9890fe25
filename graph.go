// astron.nl/go/sip - LOFAR LTA Submission Information Packages in Go
// Copyright (C) 2026  ASTRON (Netherlands Institute for Radio Astronomy)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sip

// NodeKind is the role of a node in the provenance graph of a SIP.
type NodeKind int

// These are the node kinds of a provenance graph.
const (
	DescribedDataProductNode NodeKind = iota
	RelatedDataProductNode
	ObservationNode
	PipelineRunNode
	UnspecifiedProcessNode
)

func (k NodeKind) String() string {
	switch k {
	case DescribedDataProductNode:
		return "described data product"
	case RelatedDataProductNode:
		return "related data product"
	case ObservationNode:
		return "observation"
	case PipelineRunNode:
		return "pipeline run"
	case UnspecifiedProcessNode:
		return "unspecified process"
	default:
		return "unknown"
	}
}

// IsDataProduct reports whether nodes of kind k stand for data products.
// All other nodes stand for processes.
func (k NodeKind) IsDataProduct() bool {
	return k == DescribedDataProductNode || k == RelatedDataProductNode
}

// Node is a data product or a process in the provenance graph.  Data
// products and processes have separate identifier spaces.
type Node struct {
	ID    string
	Kind  NodeKind
	Label string
}

// Edge connects a process to the data products it created, or an input
// data product to the pipeline run consuming it.
type Edge struct {
	From, To Node
}

// Graph is the provenance graph of a SIP.  Nodes are keyed by the
// identifier string of their catalog identifiers; the identifier source
// is not taken into account.
type Graph struct {
	nodes []Node

	dpIndex   map[string]int
	procIndex map[string]int

	// producedBy maps data product ids to the ids of the processes which
	// created them.  dpOrder lists the keys in document order.
	producedBy map[string][]string
	dpOrder    []string

	// inputs maps process ids to the lists of input data product ids of
	// the process.  procOrder lists the keys in document order.
	inputs    map[string][][]string
	procOrder []string
}

// NewGraph builds the provenance graph of doc.
func NewGraph(doc *Document) *Graph {
	g := &Graph{
		dpIndex:    make(map[string]int),
		procIndex:  make(map[string]int),
		producedBy: make(map[string][]string),
		inputs:     make(map[string][][]string),
	}

	if doc.DataProduct != nil {
		g.addDataProduct(doc.DataProduct, DescribedDataProductNode)
	}
	for _, dp := range doc.RelatedDataProducts {
		g.addDataProduct(dp, RelatedDataProductNode)
	}

	for _, obs := range doc.Observations {
		id := obs.Identifier.Identifier
		g.addProcess(Node{
			ID:    id,
			Kind:  ObservationNode,
			Label: id + ": " + obs.ObservationID.Identifier,
		}, nil)
	}
	for _, p := range doc.PipelineRuns {
		info := p.Pipeline()
		id := info.Identifier.Identifier
		var in []string
		for _, src := range info.SourceData {
			in = append(in, src.Identifier)
		}
		g.addProcess(Node{ID: id, Kind: PipelineRunNode, Label: id}, in)
	}
	for _, up := range doc.UnspecifiedProcesses {
		id := up.Identifier.Identifier
		g.addProcess(Node{ID: id, Kind: UnspecifiedProcessNode, Label: id}, nil)
	}

	return g
}

func (g *Graph) addDataProduct(dp DataProduct, kind NodeKind) {
	info := dp.Info()
	id := info.Identifier.Identifier
	if _, seen := g.dpIndex[id]; !seen {
		g.dpIndex[id] = len(g.nodes)
		g.nodes = append(g.nodes, Node{ID: id, Kind: kind, Label: id + ": " + info.FileName})
		g.dpOrder = append(g.dpOrder, id)
	}
	g.producedBy[id] = append(g.producedBy[id], info.ProcessIdentifier.Identifier)
}

func (g *Graph) addProcess(n Node, inputs []string) {
	if _, seen := g.procIndex[n.ID]; !seen {
		g.procIndex[n.ID] = len(g.nodes)
		g.nodes = append(g.nodes, n)
		g.procOrder = append(g.procOrder, n.ID)
		g.inputs[n.ID] = nil
	}
	if inputs != nil {
		g.inputs[n.ID] = append(g.inputs[n.ID], inputs)
	}
}

// Nodes returns all nodes in document order.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// DataProductIDs returns the ids of all data products in document order.
func (g *Graph) DataProductIDs() []string {
	return g.dpOrder
}

// ProcessIDs returns the ids of all processes in document order.
func (g *Graph) ProcessIDs() []string {
	return g.procOrder
}

// ProducedBy returns the ids of the processes recorded as creators of the
// data product with the given id.
func (g *Graph) ProducedBy(dpID string) []string {
	return g.producedBy[dpID]
}

// Inputs returns the input id lists of the process with the given id.
// Observations and unspecified processes have no inputs.
func (g *Graph) Inputs(procID string) [][]string {
	return g.inputs[procID]
}

// DataProduct returns the data product node with the given id.
func (g *Graph) DataProduct(id string) (Node, bool) {
	idx, ok := g.dpIndex[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[idx], true
}

// Process returns the process node with the given id.
func (g *Graph) Process(id string) (Node, bool) {
	idx, ok := g.procIndex[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[idx], true
}

// Edges returns all edges whose end points are present in the graph.
// Edges from processes to data products come first.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, dpID := range g.dpOrder {
		to, _ := g.DataProduct(dpID)
		for _, procID := range g.producedBy[dpID] {
			if from, ok := g.Process(procID); ok {
				edges = append(edges, Edge{From: from, To: to})
			}
		}
	}
	for _, procID := range g.procOrder {
		to, _ := g.Process(procID)
		for _, list := range g.inputs[procID] {
			for _, dpID := range list {
				if from, ok := g.DataProduct(dpID); ok {
					edges = append(edges, Edge{From: from, To: to})
				}
			}
		}
	}
	return edges
}
