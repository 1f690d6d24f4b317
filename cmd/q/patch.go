package main

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/format"
	"github.com/quanta-format/go-quanta/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.PatchCmd.Parse(cc, args)
	if err != nil {
		cfg.PatchCmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Patch == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile>", cli.ErrUsage)
	}
	ops, err := readPatch(cc, cfg.Patch)
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", cfg.Patch, err)
	}
	for _, file := range inputs(args) {
		doc, err := getObjFile(cc, file, cfg.inFormat(format.QuantaFormat))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := applyPatch(ops, doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := cfg.write(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// readPatch decodes an RFC 6902 patch held as json, or as yaml when the
// file name says so.
func readPatch(cc *cli.Context, path string) (jsonpatch.Patch, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	if f, ok := format.FromSuffix(path); ok && f == format.YAMLFormat {
		d, err = yaml.YAMLToJSON(d)
		if err != nil {
			return nil, err
		}
	}
	return jsonpatch.DecodePatch(d)
}

// applyPatch applies ops to the node form of doc. Paths in ops address
// the node form, as printed by dump.
func applyPatch(ops jsonpatch.Patch, doc *ir.Node) (*ir.Node, error) {
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	res := ir.Null()
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("patched document: %w", err)
	}
	return res, nil
}
