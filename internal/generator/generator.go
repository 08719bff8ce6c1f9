// Package generator emits Go source files defining standalone finite
// field types with their multiplication tables baked in as static data,
// so consumers get table-speed arithmetic without importing this module
// or paying the table construction cost at startup.
package generator

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/consensys/bavard"

	"github.com/ppopth/g2p/field"
	"github.com/ppopth/g2p/poly"
)

//go:embed field.go.tmpl
var fieldTemplate string

// MaxDegree is the largest field degree the generator accepts. Past
// 2^16 elements the emitted source files stop being reasonable to
// compile or review.
const MaxDegree = 16

// Config describes one field type to generate.
type Config struct {
	// Name of the generated Go type, e.g. "GF256".
	Name string
	// Package the generated file declares.
	Package string
	// Output is the path of the generated file.
	Output string
	// Degree is the field extension degree p, 1 through 16.
	Degree uint
	// Modulus is the irreducible polynomial to build the field from.
	// Leave zero to use the first irreducible polynomial of the degree.
	Modulus poly.Poly
}

type templateData struct {
	Name          string
	TypeName      string
	ExpName       string
	LogName       string
	ModulusString string
	Degree        uint
	Size          uint64
	Mask          uint64
	Order         uint64
	Modulus       uint64
	Generator     uint64
	Exp           []uint32
	Log           []uint32
}

// Generate builds the field, renders the template and writes the
// formatted source file to cfg.Output.
func Generate(cfg Config) error {
	if !validTypeName(cfg.Name) {
		return fmt.Errorf("generator: %q is not an exported Go identifier", cfg.Name)
	}
	if cfg.Package == "" {
		return fmt.Errorf("generator: package name is required")
	}
	if cfg.Output == "" {
		return fmt.Errorf("generator: output path is required")
	}
	if cfg.Degree < 1 || cfg.Degree > MaxDegree {
		return fmt.Errorf("generator: degree %d out of range [1, %d]", cfg.Degree, MaxDegree)
	}

	modulus := cfg.Modulus
	if modulus == 0 {
		var err error
		if modulus, err = poly.FirstIrreducible(cfg.Degree); err != nil {
			return err
		}
	}
	f, err := field.New(cfg.Degree, modulus)
	if err != nil {
		return err
	}

	typeName := "uint8"
	if cfg.Degree > 8 {
		typeName = "uint16"
	}
	lower := strings.ToLower(cfg.Name)
	data := templateData{
		Name:          cfg.Name,
		TypeName:      typeName,
		ExpName:       lower + "ExpTable",
		LogName:       lower + "LogTable",
		ModulusString: modulus.String(),
		Degree:        cfg.Degree,
		Size:          f.Size(),
		Mask:          f.Size() - 1,
		Order:         f.Size() - 1,
		Modulus:       uint64(modulus),
		Generator:     f.Generator().Uint64(),
		Exp:           f.ExpTable(),
		Log:           f.LogTable(),
	}

	// bavard resolves templates from a directory, so materialize the
	// embedded one next to a temporary path.
	tmpDir, err := os.MkdirTemp("", "g2pgen")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)
	if err := os.WriteFile(filepath.Join(tmpDir, "field.go.tmpl"), []byte(fieldTemplate), 0o600); err != nil {
		return err
	}

	bgen := bavard.NewBatchGenerator("ppopth", 2024, "g2pgen")
	entry := bavard.Entry{File: cfg.Output, Templates: []string{"field.go.tmpl"}}
	return bgen.Generate(data, cfg.Package, tmpDir, entry)
}

func validTypeName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsUpper(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
