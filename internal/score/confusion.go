package score

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Confusion is a cross-tabulation of decisions against true labels.
// The dimension is fixed by the declared number of classes,
// a class that is never decided still occupies its row of zeros.
type Confusion struct {
	classes int
	counts  [][]int
	total   int
}

// NewConfusion creates an empty tally for the given number of classes.
func NewConfusion(classes int) (*Confusion, error) {
	if classes <= 0 {
		return nil, fmt.Errorf("invalid number of classes %d", classes)
	}
	counts := make([][]int, classes)
	for i := range counts {
		counts[i] = make([]int, classes)
	}
	return &Confusion{
		classes: classes,
		counts:  counts,
	}, nil
}

// Add counts one (decision , true label) pair.
func (c *Confusion) Add(decision, truth int) error {
	if decision < 0 || decision >= c.classes {
		return fmt.Errorf("decision %d out of range [0,%d)", decision, c.classes)
	}
	if truth < 0 || truth >= c.classes {
		return fmt.Errorf("label %d out of range [0,%d)", truth, c.classes)
	}
	c.counts[decision][truth]++
	c.total++
	return nil
}

// AddAll counts the given parallel decision and label arrays.
func (c *Confusion) AddAll(decisions, truths []int) error {
	if len(decisions) != len(truths) {
		return fmt.Errorf("got %d decisions for %d labels", len(decisions), len(truths))
	}
	for i := range decisions {
		if err := c.Add(decisions[i], truths[i]); err != nil {
			return fmt.Errorf("could not count pair %d: %w", i, err)
		}
	}
	return nil
}

// Classes returns the declared number of classes.
func (c *Confusion) Classes() int {
	return c.classes
}

// Count returns the number of samples decided as i with true label j.
func (c *Confusion) Count(i, j int) int {
	return c.counts[i][j]
}

// Total returns the number of counted samples.
func (c *Confusion) Total() int {
	return c.total
}

// Correct returns the trace of the tally, e.g. the correctly decided samples.
func (c *Confusion) Correct() int {
	correct := 0
	for i := 0; i < c.classes; i++ {
		correct += c.counts[i][i]
	}
	return correct
}

// ErrorRate returns the empirical probability of error.
func (c *Confusion) ErrorRate() float64 {
	if c.total == 0 {
		return 0
	}
	return 1 - float64(c.Correct())/float64(c.total)
}

// Render writes the tally as a table, decisions as rows and true labels as columns.
func (c *Confusion) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	header := make([]string, c.classes+1)
	header[0] = "decision \\ truth"
	for j := 0; j < c.classes; j++ {
		header[j+1] = fmt.Sprintf("%d", j)
	}
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	for i := 0; i < c.classes; i++ {
		row := make([]string, c.classes+1)
		row[0] = fmt.Sprintf("%d", i)
		for j := 0; j < c.classes; j++ {
			row[j+1] = fmt.Sprintf("%d", c.counts[i][j])
		}
		table.Append(row)
	}
	table.Render()
}
