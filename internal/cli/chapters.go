package cli

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/on-the-ground/recipes_go/dates"
	"github.com/on-the-ground/recipes_go/decimals"
	"github.com/on-the-ground/recipes_go/encode"
	"github.com/on-the-ground/recipes_go/memoize"
	"github.com/on-the-ground/recipes_go/numbers"
	"github.com/on-the-ground/recipes_go/seqs"
	"github.com/on-the-ground/recipes_go/unpack"
)

func (c *CLI) numbersChapter(string) error {
	c.println("round half-to-even:")
	c.printf("  RoundTo(1.27, 1)    = %v\n", numbers.RoundTo(1.27, 1))
	c.printf("  RoundTo(2.675, 2)   = %v   (2.675 is stored below 2.675)\n", numbers.RoundTo(2.675, 2))
	c.printf("  RoundTo(1627731,-1) = %.0f\n", numbers.RoundTo(1627731, -1))

	c.println("never compare floats with ==:")
	c.printf("  0.1+0.2             = %v\n", 0.1+0.2)
	c.printf("  AlmostEqual(...)    = %v\n", numbers.AlmostEqual(0.1+0.2, 0.3, 1e-9))

	c.println("formatting:")
	c.printf("  Fixed(1234.56789,2) = %s\n", numbers.Fixed(1234.56789, 2))
	c.printf("  Scientific(...,2)   = %s\n", numbers.Scientific(1234.56789, 2))
	c.printf("  Grouped(1234567)    = %s\n", numbers.Grouped(1234567, language.English))
	c.printf("  Ordinal(22)         = %s\n", numbers.Ordinal(22))
	c.printf("  ByteSize(1000000)   = %s\n", numbers.ByteSize(1000000))

	c.println("bases:")
	c.printf("  ToBase(255, 2)      = %s\n", numbers.ToBase(255, 2))
	c.printf("  ToBase(255, 16)     = %s\n", numbers.ToBase(255, 16))
	return nil
}

func (c *CLI) decimalsChapter(string) error {
	a, b := decimals.MustParse("0.1"), decimals.MustParse("0.2")
	sum, err := decimals.Sum(a, b)
	if err != nil {
		return err
	}
	c.println("float vs decimal:")
	c.printf("  0.1+0.2 as float64  = %v\n", 0.1+0.2)
	c.printf("  0.1+0.2 as decimal  = %s\n", sum)

	ctx := decimals.Context{Scale: 4, Mode: decimals.HalfEven}
	q, err := ctx.Div(decimals.MustParse("1"), decimals.MustParse("3"))
	if err != nil {
		return err
	}
	c.println("division rounds at the context:")
	c.printf("  1/3 at scale 4      = %s\n", q)

	if _, err := ctx.Div(decimals.MustParse("1"), decimals.MustParse("0")); err != nil {
		c.printf("  1/0                 → %v\n", err)
	}
	return nil
}

func (c *CLI) unpackChapter(string) error {
	record := []string{"ACME", "50", "91.10"}
	name, shares, price, err := unpack.Three(record)
	if err != nil {
		return err
	}
	c.println("exact-arity destructuring:")
	c.printf("  Three(%v) = %s %s %s\n", record, name, shares, price)

	if _, _, _, err := unpack.Three(record[:2]); err != nil {
		c.printf("  Three(%v)       → %v\n", record[:2], err)
	}

	first, rest, err := unpack.Head([]int{1, 10, 7, 4, 5, 9})
	if err != nil {
		return err
	}
	c.println("star unpacking:")
	c.printf("  Head(...)            = %d, rest %v\n", first, rest)
	return nil
}

func (c *CLI) encodeChapter(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "stocks.csv"))
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	tbl, err := encode.ReadTable(f)
	if err != nil {
		return err
	}
	c.printf("stocks.csv: header %v, %d rows\n", tbl.Header, len(tbl.Rows))

	type holding struct {
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price"`
	}
	holdings, err := encode.DecodeRows(tbl, func(row []string) (holding, error) {
		price, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return holding{}, err
		}
		return holding{Symbol: row[0], Price: price}, nil
	})
	if err != nil {
		return err
	}

	pretty, err := encode.Pretty(holdings[0])
	if err != nil {
		return err
	}
	c.println("first row as JSON:")
	c.println(pretty)

	if _, err := encode.ToJSON(map[string]any{"ch": make(chan int)}); err != nil {
		c.printf("marshaling a channel → %v\n", err)
	}
	return nil
}

func (c *CLI) seqsChapter(string) error {
	c.println("an infinite generator, bounded:")
	c.printf("  Take(Count(10,2),4)  = %v\n", slices.Collect(seqs.Take(seqs.Count(10, 2), 4)))

	c.println("the pull protocol by hand:")
	cd := seqs.NewCountdown(3)
	for {
		v, ok := cd.Next()
		if !ok {
			c.println("  Next()               → exhausted")
			break
		}
		c.printf("  Next()               = %d\n", v)
	}

	merged := slices.Collect(seqs.Merge(
		cmp.Compare[int],
		slices.Values([]int{1, 4, 7, 10}),
		slices.Values([]int{2, 5, 6, 11}),
	))
	c.println("merging sorted sequences:")
	c.printf("  Merge(...)           = %v\n", merged)
	return nil
}

func (c *CLI) datesChapter(string) error {
	d := dates.NewDate(2012, time.December, 21)
	c.printf("NewDate(2012,12,21)   = %s, a %s\n", d, d.Weekday())

	start := time.Date(2012, time.December, 21, 9, 0, 0, 0, time.UTC)
	span := dates.Between(start, start.Add(2*time.Hour))
	c.printf("Between(9:00, 11:00)  lasts %s\n", span.Duration())

	p, err := dates.ParsePeriod("P1Y2M")
	if err != nil {
		return err
	}
	c.printf("ParsePeriod(\"P1Y2M\")  = %s\n", p)
	return nil
}

func (c *CLI) memoizeChapter(string) error {
	calls := 0
	fib := func(n int) int {
		calls++
		a, b := 0, 1
		for i := 0; i < n; i++ {
			a, b = b, a+b
		}
		return a
	}
	fast := memoize.Func1(fib, 64)

	for i := 0; i < 3; i++ {
		c.printf("fib(40) = %d\n", fast(40))
	}
	c.printf("underlying function ran %d time(s) for 3 calls\n", calls)
	return nil
}
