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

// Package dot draws the provenance graph of a SIP with Graphviz.
//
// The graph shows the described data product, the related data products
// and the processes which connect them, next to a legend explaining the
// node styles.
package dot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/emicklei/dot"

	"astron.nl/go/sip"
	"astron.nl/go/sip/internal/logging"
)

type nodeStyle struct {
	fill  string
	shape string
}

var styles = map[sip.NodeKind]nodeStyle{
	sip.DescribedDataProductNode: {"cadetblue", "note"},
	sip.RelatedDataProductNode:   {"cadetblue2", "note"},
	sip.ObservationNode:          {"gold", "octagon"},
	sip.PipelineRunNode:          {"chartreuse", "cds"},
	sip.UnspecifiedProcessNode:   {"orange", "hexagon"},
}

var legend = []struct {
	kind  sip.NodeKind
	label string
}{
	{sip.DescribedDataProductNode, "Described Dataproduct"},
	{sip.RelatedDataProductNode, "Related Dataproduct"},
	{sip.ObservationNode, "Observation"},
	{sip.PipelineRunNode, "Pipeline/Process"},
	{sip.UnspecifiedProcessNode, "Unspec. Process"},
}

func styleNode(n dot.Node, kind sip.NodeKind, label string) {
	s := styles[kind]
	n.Attrs(
		"label", label,
		"style", "filled",
		"fillcolor", s.fill,
		"shape", s.shape,
		"fontname", "Helvetica",
		"fontcolor", "grey8",
		"color", "grey8",
	)
}

func styleEdge(e dot.Edge) {
	e.Attrs(
		"arrowhead", "open",
		"fontname", "Courier",
		"fontsize", "12",
		"fontcolor", "grey8",
	)
}

func styleCluster(g *dot.Graph, label string) {
	g.Attrs(
		"label", label+"\n\n",
		"style", "filled",
		"bgcolor", "lightgrey",
	)
}

// nodeID keeps data products and processes apart, since they have
// separate identifier spaces.
func nodeID(n sip.Node) string {
	if n.Kind.IsDataProduct() {
		return "dp:" + n.ID
	}
	return "process:" + n.ID
}

// Render returns the provenance graph of doc.  References to data products
// or processes which are not part of the SIP are logged and left out.
func Render(doc *sip.Document, logger *slog.Logger) *dot.Graph {
	logger = logging.NewComponentLogger(logger, "dot")

	root := dot.NewGraph(dot.Directed)
	root.Attrs(
		"fontname", "Helvetica",
		"fontsize", "18",
		"fontcolor", "grey8",
		"bgcolor", "grey90",
		"rankdir", "TB",
	)

	leg := root.Subgraph("Legend", dot.ClusterOption{})
	styleCluster(leg, "Legend")
	var prev dot.Node
	for i, entry := range legend {
		n := leg.Node(fmt.Sprintf("legend-%d", i))
		styleNode(n, entry.kind, entry.label)
		if i > 0 {
			leg.Edge(prev, n).Attr("color", "invis")
		}
		prev = n
	}

	cluster := root.Subgraph("SIP", dot.ClusterOption{})
	styleCluster(cluster, doc.Project.Code+" - "+doc.Project.Description)

	g := sip.NewGraph(doc)
	nodes := make(map[string]dot.Node)
	for _, n := range g.Nodes() {
		dn := cluster.Node(nodeID(n))
		styleNode(dn, n.Kind, n.Label)
		nodes[nodeID(n)] = dn
		logger.Debug("node added",
			logging.String("id", n.ID), logging.String("kind", n.Kind.String()))
	}
	for _, e := range g.Edges() {
		styleEdge(cluster.Edge(nodes[nodeID(e.From)], nodes[nodeID(e.To)]))
	}
	for _, p := range g.Problems() {
		logger.Error("dangling reference", logging.Error(p))
	}

	return root
}

// WriteDOT writes the provenance graph of doc in the DOT language.
func WriteDOT(w io.Writer, doc *sip.Document, logger *slog.Logger) error {
	_, err := io.WriteString(w, Render(doc, logger).String())
	return err
}

// Formats lists the output formats accepted by RenderImage.
var Formats = []string{"svg", "png", "pdf", "dot"}

// ErrUnknownFormat is returned by RenderImage for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// RenderImage draws the provenance graph of doc to outPath.  All formats
// except "dot" need the Graphviz dot program.
func RenderImage(ctx context.Context, doc *sip.Document, format, outPath string, logger *slog.Logger) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	src := Render(doc, logger).String()
	if format == "dot" {
		return os.WriteFile(outPath, []byte(src), 0o644)
	}

	var stderr strings.Builder
	cmd := exec.CommandContext(ctx, "dot", "-T"+format, "-o", outPath)
	cmd.Stdin = strings.NewReader(src)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("graphviz: %w: %s", err, msg)
		}
		return fmt.Errorf("graphviz: %w", err)
	}
	logging.NewComponentLogger(logger, "dot").Info("graph rendered",
		logging.Path(outPath), logging.String("format", format))
	return nil
}
