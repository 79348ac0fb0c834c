package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
)

var (
	L2File string
)

func main() {
	L2FilePtr := flag.String("L2File", L2File, "file of \"order dt K L2\" lines appended by dgwave runs")
	flag.Parse()
	L2File = *L2FilePtr
	if len(L2File) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", L2File)
	f, err := os.Open(L2File)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	defer f.Close()
	studies, err := readStudies(f)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	orders := make([]int, 0, len(studies))
	for order := range studies {
		orders = append(orders, order)
	}
	sort.Ints(orders)
	for _, order := range orders {
		cs := studies[order]
		fmt.Printf("Order = %d\n", cs.order)
		fmt.Printf("%6s %12s %14s %8s\n", "K", "dt", "L2", "rate")
		rates := cs.Rates()
		for i := range cs.numElements {
			rate := "-"
			if i > 0 {
				rate = fmt.Sprintf("%8.3f", rates[i-1])
			}
			fmt.Printf("%6d %12.6g %14.6e %8s\n", cs.numElements[i], cs.dt[i], cs.L2[i], rate)
		}
	}
}

type ConvergenceStudy struct {
	order       int
	numElements []int
	dt, L2      []float64
}

func NewConvergenceStudy(order int) *ConvergenceStudy {
	return &ConvergenceStudy{
		order: order,
	}
}

func (cs *ConvergenceStudy) Add(numElements int, dt, L2 float64) {
	cs.numElements = append(cs.numElements, numElements)
	cs.dt = append(cs.dt, dt)
	cs.L2 = append(cs.L2, L2)
}

// Len, Less and Swap order the study by element count
func (cs *ConvergenceStudy) Len() int           { return len(cs.numElements) }
func (cs *ConvergenceStudy) Less(i, j int) bool { return cs.numElements[i] < cs.numElements[j] }
func (cs *ConvergenceStudy) Swap(i, j int) {
	cs.numElements[i], cs.numElements[j] = cs.numElements[j], cs.numElements[i]
	cs.dt[i], cs.dt[j] = cs.dt[j], cs.dt[i]
	cs.L2[i], cs.L2[j] = cs.L2[j], cs.L2[i]
}

// Rates returns the observed order of accuracy between successive refinements, log(e1/e2) / log(K2/K1)
func (cs *ConvergenceStudy) Rates() (rates []float64) {
	for i := 1; i < len(cs.numElements); i++ {
		rates = append(rates, math.Log(cs.L2[i-1]/cs.L2[i])/
			math.Log(float64(cs.numElements[i])/float64(cs.numElements[i-1])))
	}
	return
}

func readStudies(r io.Reader) (studies map[int]*ConvergenceStudy, err error) {
	var (
		records [][]string
		ok      bool
		cs      *ConvergenceStudy
	)
	studies = make(map[int]*ConvergenceStudy)
	cr := csv.NewReader(bufio.NewReader(r))
	cr.Comma = ' '
	cr.Comment = '#'
	cr.FieldsPerRecord = 4
	if records, err = cr.ReadAll(); err != nil {
		return nil, err
	}
	for i, rec := range records {
		var (
			order, K int
			dt, L2   float64
		)
		if order, err = strconv.Atoi(rec[0]); err == nil {
			if dt, err = strconv.ParseFloat(rec[1], 64); err == nil {
				if K, err = strconv.Atoi(rec[2]); err == nil {
					L2, err = strconv.ParseFloat(rec[3], 64)
				}
			}
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if cs, ok = studies[order]; !ok {
			cs = NewConvergenceStudy(order)
			studies[order] = cs
		}
		cs.Add(K, dt, L2)
	}
	for _, cs := range studies {
		sort.Stable(cs)
	}
	return
}
