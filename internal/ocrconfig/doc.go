// Package ocrconfig holds the user-selected options for one ocrmypdf run.
//
// OcrConfig is plain data. It carries defaults, a fixed table of supported
// recognition languages, the output-type and optimization enumerations, and
// validation of those enumerations. It has no other behavior; turning a
// configuration into a command line is the job of the command package.
//
// # Languages
//
// Languages are a set. When joined for the command line they follow the
// order of SupportedLanguages, with codes missing from the table appended in
// the order they were first seen:
//
//	cfg.Languages = []string{"eng", "chi_sim"}
//	ocrconfig.CanonicalLanguages(cfg.Languages) // ["chi_sim", "eng"]
//
// # Building
//
// Builder offers a fluent way to derive a configuration from a baseline:
//
//	cfg, err := ocrconfig.NewBuilder(ocrconfig.Default()).
//	    Languages("eng").
//	    Deskew(true).
//	    OutputType(ocrconfig.OutputPDFA2).
//	    Input("/scans/report.pdf").
//	    Build()
package ocrconfig
