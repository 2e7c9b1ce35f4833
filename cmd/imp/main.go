// Command imp is the IMP language driver: it parses, compiles and runs
// a source file, or inspects the intermediate AST/bytecode for it (spec
// §6 — the external interfaces deliberately left "not defined here" are
// this package's responsibility).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imp-lang/imp/ast"
	"github.com/imp-lang/imp/bytecode"
	"github.com/imp-lang/imp/compiler"
	"github.com/imp-lang/imp/dis"
	"github.com/imp-lang/imp/parser"
	"github.com/imp-lang/imp/vm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "imp",
		Short: "imp compiles and runs IMP source files",
	}
	root.PersistentFlags().Bool("verbose", false, "log every executed opcode")
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newRunCmd(), newDisCmd(), newASTCmd())
	return root
}

func logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "compile and execute an IMP source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := compileFile(args[0])
			if err != nil {
				printFault(err)
				return err
			}
			machine := vm.New(prog, vm.WithLogger(logger()))
			if err := machine.Run(); err != nil {
				printFault(err)
				return err
			}
			return nil
		},
	}
}

func newDisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dis <file>",
		Short: "print the disassembled bytecode for an IMP source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := compileFile(args[0])
			if err != nil {
				printFault(err)
				return err
			}
			return dis.Fprint(os.Stdout, prog)
		},
	}
}

func newASTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "print the parsed AST for an IMP source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			mod, err := parser.ParseModule(string(src), args[0])
			if err != nil {
				printFault(err)
				return err
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return printModuleJSON(mod)
			}
			for _, item := range mod.Items {
				switch {
				case item.Func != nil:
					fmt.Println(item.Func.String())
				case item.Proto != nil:
					fmt.Println(item.Proto.String())
				default:
					fmt.Println(item.Stmt.String())
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "render the AST as colorized JSON instead of its textual form")
	return cmd
}

// printModuleJSON renders a summary of mod's items as colorized JSON,
// useful for piping into editor tooling that doesn't want to parse the
// textual AST dump.
func printModuleJSON(mod *ast.Module) error {
	summary := make([]map[string]any, 0, len(mod.Items))
	for _, item := range mod.Items {
		switch {
		case item.Func != nil:
			summary = append(summary, map[string]any{"kind": "func", "name": item.Func.Name, "params": len(item.Func.Params)})
		case item.Proto != nil:
			summary = append(summary, map[string]any{"kind": "proto", "name": item.Proto.Name, "primitive": item.Proto.PrimitiveName})
		default:
			summary = append(summary, map[string]any{"kind": "stmt", "text": item.Stmt.String()})
		}
	}
	out, err := prettyjson.Marshal(summary)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func compileFile(path string) (*bytecode.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mod, err := parser.ParseModule(string(src), path)
	if err != nil {
		return nil, err
	}
	return compiler.Translate(mod)
}

func printFault(err error) {
	_, _ = color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
}
