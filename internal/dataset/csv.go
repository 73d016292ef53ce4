package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
)

const precision = 8

// LoadCSV reads a dataset from a csv file with a header row.
// All columns are numeric features, except for an optional 'type' column which holds the row labels.
func LoadCSV(path string) (*Dataset, error) {
	instances, err := base.ParseCSVToInstances(path, true)
	if err != nil {
		return nil, fmt.Errorf("could not parse '%s': %w", path, err)
	}
	attrs := instances.AllAttributes()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, attr := range attrs {
		spec, err := instances.GetAttribute(attr)
		if err != nil {
			return nil, fmt.Errorf("could not resolve column '%s': %w", attr.GetName(), err)
		}
		specs[i] = spec
	}
	_, rows := instances.Size()

	typeIdx := -1
	columns := make([]string, 0, len(attrs))
	for i, attr := range attrs {
		if strings.EqualFold(attr.GetName(), TypeColumn) {
			typeIdx = i
			continue
		}
		columns = append(columns, attr.GetName())
	}

	features := make([]xmath.Vector, rows)
	var types []int
	if typeIdx >= 0 {
		types = make([]int, rows)
	}
	for r := 0; r < rows; r++ {
		v := xmath.Vec(len(columns))
		j := 0
		for i, spec := range specs {
			f, err := value(attrs[i], instances.Get(spec, r))
			if err != nil {
				return nil, fmt.Errorf("could not read row %d column '%s': %w", r, attrs[i].GetName(), err)
			}
			if i == typeIdx {
				types[r] = int(f)
				continue
			}
			v[j] = f
			j++
		}
		features[r] = v
	}

	log.Debug().
		Str("path", path).
		Int("rows", rows).
		Int("columns", len(columns)).
		Bool("labelled", typeIdx >= 0).
		Msg("loaded dataset")

	return &Dataset{
		Columns:  columns,
		Features: features,
		Type:     types,
	}, nil
}

func value(attr base.Attribute, b []byte) (float64, error) {
	if _, ok := attr.(*base.FloatAttribute); ok {
		return base.UnpackBytesToFloat(b), nil
	}
	return strconv.ParseFloat(strings.TrimSpace(attr.GetStringFromSysVal(b)), 64)
}

// SaveCSV writes the dataset to a csv file with a header row, creating or truncating the file.
// Columns are written in dataset order, followed by the 'type' column if the dataset is labelled.
func (d *Dataset) SaveCSV(path string) error {
	instances := base.NewDenseInstances()

	attrs := make([]*base.FloatAttribute, 0, len(d.Columns)+1)
	for _, c := range d.Columns {
		attr := base.NewFloatAttribute(c)
		attr.Precision = precision
		attrs = append(attrs, attr)
	}
	if d.Labelled() {
		attr := base.NewFloatAttribute(TypeColumn)
		attr.Precision = 0
		attrs = append(attrs, attr)
	}
	specs := make([]base.AttributeSpec, len(attrs))
	for i, attr := range attrs {
		specs[i] = instances.AddAttribute(attr)
	}
	if d.Labelled() {
		if err := instances.AddClassAttribute(attrs[len(attrs)-1]); err != nil {
			return fmt.Errorf("could not set label column: %w", err)
		}
	}

	if err := instances.Extend(d.Len()); err != nil {
		return fmt.Errorf("could not allocate %d rows: %w", d.Len(), err)
	}
	for r, v := range d.Features {
		for i := range d.Columns {
			instances.Set(specs[i], r, base.PackFloatToBytes(v[i]))
		}
		if d.Labelled() {
			instances.Set(specs[len(specs)-1], r, base.PackFloatToBytes(float64(d.Type[r])))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create '%s': %w", path, err)
	}
	defer f.Close()

	if err := writeCSV(f, instances, attrs, specs); err != nil {
		return fmt.Errorf("could not write '%s': %w", path, err)
	}
	return f.Sync()
}

// writeCSV serialises the instances with the columns in the given order.
// base.SerializeInstancesToCSVStream orders the non-class attributes through a map.
func writeCSV(out io.Writer, instances *base.DenseInstances, attrs []*base.FloatAttribute, specs []base.AttributeSpec) error {
	w := csv.NewWriter(out)
	header := make([]string, len(attrs))
	for i, attr := range attrs {
		header[i] = attr.GetName()
	}
	if err := w.Write(header); err != nil {
		return err
	}
	row := make([]string, len(attrs))
	err := instances.MapOverRows(specs, func(values [][]byte, _ int) (bool, error) {
		for i, v := range values {
			row[i] = attrs[i].GetStringFromSysVal(v)
		}
		return true, w.Write(row)
	})
	if err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
