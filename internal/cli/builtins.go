package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/types"
	"github.com/cwbudde/n/internal/values"
)

// hostResolver returns the Resolver the core's "host exposes a hook" point
// (spec.md §1/§6) is built for: a single demonstration namespace, `"io"`,
// proving `imp` resolves to something real end-to-end without this module
// loading actual foreign libraries (an explicit Non-goal).
func hostResolver(stdout io.Writer, stdin io.Reader) scope.Resolver {
	io := buildIONamespace(stdout, stdin)
	return func(name string) (*scope.Namespace, bool) {
		if name == io.Name {
			return io, true
		}
		return nil, false
	}
}

func buildIONamespace(stdout io.Writer, stdin io.Reader) *scope.Namespace {
	ns := scope.NewNamespace("io")
	reader := bufio.NewReader(stdin)

	ns.Add("println", values.NewNativeFunction(
		"println",
		[]values.Param{{Name: "message", Type: types.NewPrimitive(types.Str)}},
		types.NewPrimitive(types.Bool),
		func(args []values.Value) (values.Value, error) {
			s, ok := args[0].(values.StrValue)
			if !ok {
				return nil, fmt.Errorf("io.println expects a str, got %s", args[0].Type())
			}
			_, err := fmt.Fprintln(stdout, string(s))
			return values.BoolValue(err == nil), nil
		},
	))

	ns.Add("readLine", values.NewNativeFunction(
		"readLine",
		nil,
		types.NewPrimitive(types.Str),
		func(args []values.Value) (values.Value, error) {
			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return values.StrValue(""), nil
			}
			for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
				line = line[:len(line)-1]
			}
			return values.StrValue(line), nil
		},
	))

	return ns
}
