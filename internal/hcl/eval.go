package hcl

import (
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

type hostFacts struct {
	OS     string `cty:"os"`
	Arch   string `cty:"arch"`
	NumCPU int    `cty:"num_cpu"`
}

// envFunc returns the value of an environment variable, or "" when unset.
var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{{Name: "name", Type: cty.String}},
	Type:   function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

func newEvalContext() (*hcl.EvalContext, error) {
	facts := hostFacts{OS: runtime.GOOS, Arch: runtime.GOARCH, NumCPU: runtime.NumCPU()}
	ty, err := gocty.ImpliedType(facts)
	if err != nil {
		return nil, err
	}
	host, err := gocty.ToCtyValue(facts, ty)
	if err != nil {
		return nil, err
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"os":   cty.StringVal(facts.OS),
			"arch": cty.StringVal(facts.Arch),
			"host": host,
		},
		Functions: map[string]function.Function{
			"env":    envFunc,
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
			"join":   stdlib.JoinFunc,
			"concat": stdlib.ConcatFunc,
			"format": stdlib.FormatFunc,
		},
	}, nil
}
