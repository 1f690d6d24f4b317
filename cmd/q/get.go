package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/format"
	"github.com/quanta-format/go-quanta/ir"
)

var errNotFound = errors.New("not found")

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.inFormat(format.QuantaFormat))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		n, err := lookup(doc, path)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
		res := ir.Null()
		res.PushChild(n.Clone())
		if err := cfg.write(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// lookup follows the '/' separated steps of path from doc.
func lookup(doc *ir.Node, path string) (*ir.Node, error) {
	n := doc
	steps := strings.Split(strings.Trim(path, "/"), "/")
	for i, step := range steps {
		at := "/" + strings.Join(steps[:i], "/")
		if idx, ok := strings.CutPrefix(step, "#"); ok {
			k, err := strconv.Atoi(idx)
			if err != nil || k < 0 || k >= n.NumChildren() {
				return nil, fmt.Errorf("%w: no member %s in %s (%d members)", errNotFound, step, at, n.NumChildren())
			}
			n = n.ChildAt(k)
			continue
		}
		c := n.FindChild(step)
		if c == nil {
			hint := ""
			if s := suggest(step, n); len(s) != 0 {
				hint = ", did you mean " + strings.Join(s, " or ") + "?"
			}
			return nil, fmt.Errorf("%w: no member %q in %s%s", errNotFound, step, at, hint)
		}
		n = c
	}
	return n, nil
}

// suggest returns the names of members of n close to name.
func suggest(name string, n *ir.Node) []string {
	var names []string
	for _, c := range n.Children() {
		if c.HasName() {
			names = append(names, c.Name())
		}
	}
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		for _, cand := range names {
			if d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(cand)); d <= 2 {
				ranks = append(ranks, fuzzy.Rank{Source: name, Target: cand, Distance: d})
			}
		}
	}
	sort.Sort(ranks)
	var res []string
	for i, r := range ranks {
		if i == 3 {
			break
		}
		res = append(res, strconv.Quote(r.Target))
	}
	return res
}
