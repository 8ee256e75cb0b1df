// Package table loads named matrices and the operations to run on them
// from YAML documents.
package table

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqsense/glmath/mat"
)

var (
	ErrUnknownMatrix  = errors.New("table: unknown matrix")
	ErrUnknownOp      = errors.New("table: unknown operation")
	ErrMixedDimension = errors.New("table: operands have different dimensions")
	ErrDuplicateName  = errors.New("table: name defined as both 3x3 and 4x4")
)

// Job is an operation on two named matrices.
// When InPlace is set, the result replaces the matrix named by A.
type Job struct {
	Title   string `yaml:"title"`
	Op      string `yaml:"op"`
	A       string `yaml:"a"`
	B       string `yaml:"b"`
	InPlace bool   `yaml:"in_place"`
}

type Document struct {
	Mat3 map[string]mat.Mat3 `yaml:"mat3"`
	Mat4 map[string]mat.Mat4 `yaml:"mat4"`
	Jobs []Job               `yaml:"jobs"`
}

// document is the wire form of Document. Tables are kept as nodes because
// yaml.v3 skips UnmarshalYAML on null values.
type document struct {
	Mat3 map[string]yaml.Node `yaml:"mat3"`
	Mat4 map[string]yaml.Node `yaml:"mat4"`
	Jobs []Job                `yaml:"jobs"`
}

func Load(r io.Reader) (*Document, error) {
	var raw document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("table: decode: %w", err)
	}
	mat3, err := decodeTables[[9]float32](raw.Mat3)
	if err != nil {
		return nil, err
	}
	mat4, err := decodeTables[[16]float32](raw.Mat4)
	if err != nil {
		return nil, err
	}
	for name := range mat3 {
		if _, ok := mat4[name]; ok {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
	}
	return &Document{Mat3: mat3, Mat4: mat4, Jobs: raw.Jobs}, nil
}

func decodeTables[A mat.Elements](nodes map[string]yaml.Node) (map[string]mat.Square[A], error) {
	if nodes == nil {
		return nil, nil
	}
	tables := make(map[string]mat.Square[A], len(nodes))
	for name, node := range nodes {
		if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null") {
			return nil, fmt.Errorf("table: %q: no values: %w", name, mat.ErrInvalidDimension)
		}
		var m mat.Square[A]
		if err := node.Decode(&m); err != nil {
			return nil, fmt.Errorf("table: %q: %w", name, err)
		}
		tables[name] = m
	}
	return tables, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Run executes the jobs in order and prints each result under its title.
func (d *Document) Run(w io.Writer) error {
	for i, job := range d.Jobs {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := d.run(w, job); err != nil {
			return fmt.Errorf("job %d: %w", i, err)
		}
	}
	return nil
}

func (d *Document) run(w io.Writer, job Job) error {
	if a, ok := d.Mat3[job.A]; ok {
		b, ok := d.Mat3[job.B]
		if !ok {
			return d.missing(job.B)
		}
		return runJob(w, job, d.Mat3, a, b)
	}
	if a, ok := d.Mat4[job.A]; ok {
		b, ok := d.Mat4[job.B]
		if !ok {
			return d.missing(job.B)
		}
		return runJob(w, job, d.Mat4, a, b)
	}
	return fmt.Errorf("%q: %w", job.A, ErrUnknownMatrix)
}

func (d *Document) missing(name string) error {
	_, ok3 := d.Mat3[name]
	_, ok4 := d.Mat4[name]
	if ok3 || ok4 {
		return fmt.Errorf("%q: %w", name, ErrMixedDimension)
	}
	return fmt.Errorf("%q: %w", name, ErrUnknownMatrix)
}

func runJob[A mat.Elements](w io.Writer, job Job, named map[string]mat.Square[A], a, b mat.Square[A]) error {
	var res mat.Square[A]
	var sym string
	switch job.Op {
	case "add":
		sym = "+"
		if job.InPlace {
			res = *a.AddInPlace(b)
		} else {
			res = a.Add(b)
		}
	case "mul":
		sym = "*"
		if job.InPlace {
			res = *a.MulInPlace(b)
		} else {
			res = a.Mul(b)
		}
	default:
		return fmt.Errorf("%q: %w", job.Op, ErrUnknownOp)
	}
	if job.InPlace {
		named[job.A] = res
	}

	title := job.Title
	if title == "" {
		title = fmt.Sprintf("%s %s %s", job.A, sym, job.B)
	}
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	return res.Fprint(w)
}
