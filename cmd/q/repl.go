package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/scott-cotton/cli"

	"github.com/quanta-format/go-quanta/encode"
	"github.com/quanta-format/go-quanta/eval"
	"github.com/quanta-format/go-quanta/ir"
	"github.com/quanta-format/go-quanta/parse"
	"github.com/quanta-format/go-quanta/token"
)

const (
	promptMain = "q> "
	promptCont = ".. "
	replHelp   = `enter members, one or more per line.
  :show   print the session document
  :clear  forget all members
  :quit   exit`
)

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		cfg.Repl.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	histPath := cfg.History
	if histPath == "" {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, ".q_history")
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	s := &session{doc: ir.Null(), cfg: cfg.MainConfig, w: cc.Out}
	for {
		src, ok := readMembers(ln)
		if !ok {
			fmt.Fprintln(cc.Out)
			return nil
		}
		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":show":
			s.show()
			continue
		case ":clear":
			s.doc = ir.Null()
			continue
		case ":help", ":h":
			fmt.Fprintln(cc.Out, replHelp)
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if err := s.eval(src); err != nil {
			fmt.Fprintln(cc.Out, err)
		}
	}
}

// readMembers reads lines until they parse or fail to parse for a
// reason other than an unterminated construct.
func readMembers(ln *liner.State) (string, bool) {
	b := &strings.Builder{}
	for {
		prompt := promptMain
		if b.Len() != 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() != 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		_, err = parse.ParseString(b.String())
		if !errors.Is(err, token.ErrUnterminated) {
			return b.String(), true
		}
	}
}

// session is the document built up by a repl.
type session struct {
	doc *ir.Node
	cfg *MainConfig
	w   io.Writer
}

// eval parses src, adds its members to the session and prints each one.
// Computable expressions are followed by a comment holding their value.
func (s *session) eval(src string) error {
	in, err := parse.ParseString(src)
	if err != nil {
		return err
	}
	opts := s.cfg.encOpts(s.w)
	for _, c := range in.Children() {
		c = c.Clone()
		line, err := encode.EncodeString(c, opts...)
		if err != nil {
			return err
		}
		if c.Is(ir.ExpressionType) {
			v, err := eval.Eval(c, eval.Scope(nil, s.doc))
			switch {
			case errors.Is(err, eval.ErrUndefined):
			case err != nil:
				line += `  \\ ` + err.Error()
			default:
				res := c.Clone()
				eval.SetValue(res, v)
				res.ClearName()
				val, err := encode.EncodeString(res, opts...)
				if err != nil {
					return err
				}
				line += `  \\ = ` + val
			}
		}
		fmt.Fprintln(s.w, line)
		s.set(c)
	}
	return nil
}

// set adds c to the session, replacing a member of the same name.
func (s *session) set(c *ir.Node) {
	if c.HasName() {
		for i, old := range s.doc.Children() {
			if old.Name() == c.Name() {
				s.doc.RemoveChild(i)
				s.doc.InsertChild(i, c)
				return
			}
		}
	}
	s.doc.PushChild(c)
}

func (s *session) show() {
	if err := s.cfg.write(s.w, s.doc); err != nil {
		fmt.Fprintln(s.w, err)
	}
}
