// Package config reads the network/fluid/solver JSON document a flownet run
// is configured from, following inp.ReadSim's read-the-file-then-unmarshal
// shape (inp/sim.go): io.ReadFile, json.Unmarshal, chk.Err-wrapped
// failures. Unlike inp.Simulation, flownet's document cannot unmarshal
// straight into the node.Node/edge.Edge interfaces, so nodes and edges are
// read as (kind, id, params) triples and built through node.New/edge.New,
// the factories spec §6 contracts.
package config

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/flownet/edge"
	"github.com/cpmech/flownet/fluid"
	"github.com/cpmech/flownet/graph"
	"github.com/cpmech/flownet/node"
	"github.com/cpmech/flownet/solver"
)

// NodeSpec names a node's kind and boundary id before construction.
type NodeSpec struct {
	Kind string    `json:"kind"`
	Id   uint64    `json:"id"`
	Prms fun.Prms  `json:"prms"`
}

// EdgeSpec names an edge's kind and endpoints before construction.
type EdgeSpec struct {
	Kind string   `json:"kind"`
	Id   uint64   `json:"id"`
	From uint64   `json:"from"`
	To   uint64   `json:"to"`
	Prms fun.Prms `json:"prms"`
}

// FluidSpec names the working fluid's kind (basic or water) and parameters.
type FluidSpec struct {
	Kind string   `json:"kind"`
	Prms fun.Prms `json:"prms"`
}

// Document is the full persisted state spec §6 contracts: graph plus fluid
// plus solver parameters. The on-disk format round-trips these
// structurally; exact byte layout is not contracted, hence the plain
// (kind, prms) factory encoding rather than mirroring the runtime types.
type Document struct {
	Nodes  []NodeSpec     `json:"nodes"`
	Edges  []EdgeSpec     `json:"edges"`
	Fluid  FluidSpec      `json:"fluid"`
	Solver solver.Solver  `json:"solver"`
}

// Read loads and parses a document from path, following inp.ReadSim's
// io.ReadFile + json.Unmarshal + chk.Err-wrapped-failure idiom.
func Read(path string) (*Document, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("config: cannot read %q: %v\n", path, err)
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, chk.Err("config: cannot parse %q: %v\n", path, err)
	}
	return &doc, nil
}

// Build constructs the live graph and fluid from the document, using
// node.New/edge.New/fluid.New exactly as inp.ReadSim builds live mesh and
// material objects from their own (kind, prms) records.
func (d *Document) Build() (*graph.Graph, fluid.Fluid, error) {
	g := graph.New()
	for _, ns := range d.Nodes {
		n, err := node.New(ns.Kind, ns.Id, ns.Prms)
		if err != nil {
			return nil, nil, chk.Err("config: node %d: %v\n", ns.Id, err)
		}
		g.AddNode(n)
	}
	for _, es := range d.Edges {
		e, err := edge.New(es.Kind, es.Id, es.From, es.To, es.Prms)
		if err != nil {
			return nil, nil, chk.Err("config: edge %d: %v\n", es.Id, err)
		}
		g.AddEdge(e)
	}
	g.CreateIdToIndex()
	f, err := fluid.New(d.Fluid.Kind, d.Fluid.Prms)
	if err != nil {
		return nil, nil, chk.Err("config: fluid: %v\n", err)
	}
	return g, f, nil
}

// Write serialises the document back to path (the round-trip half of spec
// §6), mirroring inp's io.WriteFile usage elsewhere in the teacher's JSON
// output helpers.
func Write(path string, doc *Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return chk.Err("config: cannot encode document: %v\n", err)
	}
	buf := bytes.NewBuffer(b)
	io.WriteFile(path, buf)
	return nil
}
