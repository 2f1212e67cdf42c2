package cssel

// Package cssel provides:
//
// - A fluent builder for compound CSS selectors with grammar validation (dsl package)
// - A stable error model via Issues (fragment kind, code, message)
// - JSON/YAML serialization helpers and declarative selector definitions (codec package)
// - A small CLI that compiles declarative definitions (cmd/cssel)
//
// Design policy:
// - Keep only public APIs in the root package; put the grammar engine under internal/.
// - Place the builder DSL under dsl/, serialization under codec/, and the CLI under cmd/cssel.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := dsl.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Build()
//	s2, err := dsl.Combine(dsl.Element("div").ID("main"), cssel.AdjacentSibling,
//	    dsl.Element("table").ID("data")).Build()
//
//	wire, err := codec.Serialize(rect)
//	rect2, err := codec.Deserialize[cssel.Rect](wire)
