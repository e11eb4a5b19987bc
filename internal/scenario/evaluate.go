package scenario

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gauge-lab/lattice-dof/internal/domain/cyclic"
	"github.com/gauge-lab/lattice-dof/internal/domain/dof"
	"github.com/gauge-lab/lattice-dof/internal/domain/shared"
	"github.com/gauge-lab/lattice-dof/internal/domain/spin"
	"github.com/gauge-lab/lattice-dof/pkg/logger"
)

// Reading is one derived quantity of an evaluated entry.
type Reading struct {
	Key   string
	Value string
}

// Result is the outcome of evaluating one entry. Err is set when the entry
// could not be built or one of its steps failed.
type Result struct {
	Name      string
	Kind      string
	Rendering string
	Readings  []Reading
	Err       error
}

// Report collects the results of a document in entry order.
type Report struct {
	Name    string
	Results []Result
}

// Failed returns the number of results carrying an error.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Options configures an Evaluator.
type Options struct {
	// Plain renders values in Go syntax instead of the numeral-glyph form.
	Plain bool
}

// Evaluator turns documents into reports.
type Evaluator struct {
	opts Options
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(opts Options) *Evaluator {
	return &Evaluator{opts: opts}
}

// Evaluate evaluates every entry of doc. A failing entry does not stop the
// evaluation; its error is recorded in its Result.
func (ev *Evaluator) Evaluate(ctx context.Context, doc *Document) Report {
	log := logger.FromContext(ctx).With(logger.Scenario(doc.Name))

	report := Report{Name: doc.Name, Results: make([]Result, 0, len(doc.Entries))}
	for _, entry := range doc.Entries {
		res := ev.evaluateEntry(entry)
		if res.Err != nil {
			log.Warn("entry failed", logger.Entry(res.Name), logger.Kind(res.Kind), logger.Err(res.Err))
		} else {
			log.Debug("entry evaluated", logger.Entry(res.Name), logger.Kind(res.Kind))
		}
		report.Results = append(report.Results, res)
	}
	return report
}

func (ev *Evaluator) evaluateEntry(entry Entry) Result {
	res := Result{Name: entry.Name}

	kind, err := entry.Kind()
	if err != nil {
		res.Err = err
		return res
	}
	res.Kind = kind

	switch kind {
	case "cyclic":
		err = ev.evalCyclic(&res, *entry.Cyclic)
	case "spin":
		err = ev.evalSpin(&res, *entry.Spin)
	case "charge":
		err = ev.evalCharge(&res, *entry.Charge)
	case "plaquette":
		err = ev.evalPlaquette(&res, *entry.Plaquette)
	}
	res.Err = err
	return res
}

func (ev *Evaluator) evalCyclic(res *Result, spec CyclicSpec) error {
	e, err := buildCyclic(spec)
	if err != nil {
		return err
	}
	res.Rendering = ev.render(e)
	res.Readings = cyclicReadings(e)
	return nil
}

func (ev *Evaluator) evalSpin(res *Result, spec SpinSpec) error {
	st, err := spin.New(spec.S, spec.Sz)
	if err != nil {
		return err
	}
	for _, step := range spec.Steps {
		op, arg, err := parseStep(step)
		if err != nil {
			return err
		}
		switch op {
		case "inc":
			st.Increment()
		case "dec":
			st.Decrement()
		case "add":
			sz, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return stepError(step, err)
			}
			other, err := spin.New(st.Spin(), sz)
			if err != nil {
				return err
			}
			if st, err = st.Add(other); err != nil {
				return err
			}
		default:
			return stepError(step, nil)
		}
	}

	res.Rendering = ev.render(st)
	res.Readings = []Reading{{"s", formatFloat(st.Spin())}}
	if sz, ok := st.Projection(); ok {
		res.Readings = append(res.Readings, Reading{"sz", formatFloat(sz)})
	} else {
		res.Readings = append(res.Readings, Reading{"sz", "invalid"})
	}
	return nil
}

func (ev *Evaluator) evalCharge(res *Result, spec ChargeSpec) error {
	c, err := dof.NewChargeSite(spec.Type, spec.Value)
	if err != nil {
		return err
	}
	res.Rendering = c.String()
	res.Readings = []Reading{
		{"type", c.Orientation()},
		{"value", c.Symbol()},
		{"activated", strconv.FormatBool(c.Activated())},
		{"negative_type", strconv.FormatBool(c.IsNegativeType())},
		{"charge", strconv.Itoa(c.Charge())},
	}
	return nil
}

func (ev *Evaluator) evalPlaquette(res *Result, spec PlaquetteSpec) error {
	top, err := buildCyclic(spec.Top)
	if err != nil {
		return fmt.Errorf("top link: %w", err)
	}
	bottom, err := buildCyclic(spec.Bottom)
	if err != nil {
		return fmt.Errorf("bottom link: %w", err)
	}

	var (
		p      dof.Plaquette[cyclic.Element]
		charge *cyclic.Element
	)
	if spec.Pure {
		pp := dof.NewPurePlaquette(dof.NewLink(top), dof.NewLink(bottom))
		c := pp.Charge()
		p, charge = pp.Plaquette, &c
		res.Rendering = pp.String()
	} else {
		p = dof.NewPlaquette(dof.NewLink(top), dof.NewLink(bottom))
		res.Rendering = p.String()
	}

	pol, err := p.LongitudinalPolarization()
	if err != nil {
		return err
	}
	res.Readings = []Reading{{"polarization", ev.render(pol.Value())}}
	if charge != nil {
		res.Readings = append(res.Readings, Reading{"charge", ev.render(*charge)})
	}
	return nil
}

func (ev *Evaluator) render(v interface {
	fmt.Stringer
	fmt.GoStringer
}) string {
	if ev.opts.Plain {
		return v.GoString()
	}
	return v.String()
}

func buildCyclic(spec CyclicSpec) (cyclic.Element, error) {
	e, err := cyclic.New(spec.Modulus, spec.Value)
	if err != nil {
		return cyclic.Element{}, err
	}
	for _, step := range spec.Steps {
		op, arg, err := parseStep(step)
		if err != nil {
			return cyclic.Element{}, err
		}
		switch op {
		case "inc":
			e.Increment()
		case "dec":
			e.Decrement()
		case "neg":
			e = e.Negate()
		case "add", "sub":
			k, err := strconv.Atoi(arg)
			if err != nil {
				return cyclic.Element{}, stepError(step, err)
			}
			other, err := cyclic.New(e.Modulus(), k)
			if err != nil {
				return cyclic.Element{}, err
			}
			if op == "add" {
				e, err = e.Add(other)
			} else {
				e, err = e.Subtract(other)
			}
			if err != nil {
				return cyclic.Element{}, err
			}
		default:
			return cyclic.Element{}, stepError(step, nil)
		}
	}
	return e, nil
}

func cyclicReadings(e cyclic.Element) []Reading {
	phase := e.PhaseValue()
	return []Reading{
		{"value", strconv.Itoa(e.Value())},
		{"centered", strconv.Itoa(e.CenteredValue())},
		{"spin", formatFloat(e.SpinValue())},
		{"phase", fmt.Sprintf("%.6f%+.6fi", real(phase), imag(phase))},
	}
}

// parseStep splits "op" or "op:arg".
func parseStep(step string) (op, arg string, err error) {
	op, arg, hasArg := strings.Cut(strings.TrimSpace(step), ":")
	switch op {
	case "inc", "dec", "neg":
		if hasArg {
			return "", "", stepError(step, nil)
		}
	case "add", "sub":
		if !hasArg || arg == "" {
			return "", "", stepError(step, nil)
		}
	default:
		return "", "", stepError(step, nil)
	}
	return op, strings.TrimSpace(arg), nil
}

func stepError(step string, err error) error {
	if err != nil {
		return shared.WrapError(domainName, "Step", shared.ErrInvalidInput, fmt.Sprintf("bad step %q", step), err)
	}
	return shared.Errorf(domainName, "Step", shared.ErrInvalidInput, "bad step %q", step)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
