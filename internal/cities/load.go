package cities

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/srikanthsesetti/pdsnd-github/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// fileRoot decodes the top level of a city override file. Any other block
// or attribute is rejected.
type fileRoot struct {
	Cities []*cityBlock `hcl:"city,block"`
}

type cityBlock struct {
	Name string         `hcl:"name,label"`
	File hcl.Expression `hcl:"file,attr"`
}

// Load builds the default registry for dataDir and applies the overrides in
// the HCL file at path. Inside the file, `data_dir` evaluates to dataDir:
//
//	city "chicago" {
//	  file = "${data_dir}/archive/chicago-2017.csv"
//	}
func Load(ctx context.Context, path, dataDir string) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	reg := Default(dataDir)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse city file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode city file %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"data_dir": cty.StringVal(dataDir),
		},
	}

	seen := make(map[string]bool, len(root.Cities))
	for _, block := range root.Cities {
		if _, ok := reg.files[block.Name]; !ok {
			return nil, fmt.Errorf("%s: unknown city %q (supported: %v)", path, block.Name, reg.Names())
		}
		if seen[block.Name] {
			return nil, fmt.Errorf("%s: city %q declared more than once", path, block.Name)
		}
		seen[block.Name] = true

		file, err := evalFile(block.File, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("%s: city %q: %w", path, block.Name, err)
		}
		reg.files[block.Name] = file
		logger.Debug("City file overridden.", "city", block.Name, "file", file)
	}

	logger.Info("City registry loaded.", "path", path, "overrides", len(root.Cities))
	return reg, nil
}

func evalFile(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("file must be a string: %w", err)
	}
	if val.IsNull() || !val.IsKnown() || val.AsString() == "" {
		return "", fmt.Errorf("file must not be empty")
	}
	return val.AsString(), nil
}
