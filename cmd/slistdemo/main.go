// Command slistdemo runs a short sequence of operations against an
// slist.List and logs the result of each one.
package main

import (
	"flag"
	"fmt"
	"os"

	"deedles.dev/slist"
	"go.uber.org/zap"
)

type demo struct {
	log *zap.Logger
	ls  slist.List[int]
}

func (d *demo) report(op string, index, value int, err error) {
	if err != nil {
		d.log.Error(op, zap.Int("index", index), zap.Int("size", d.ls.Size()), zap.Error(err))
		return
	}

	d.log.Info(op,
		zap.Int("index", index),
		zap.Int("value", value),
		zap.Int("size", d.ls.Size()),
		zap.String("list", d.ls.String()),
	)
}

func (d *demo) run(n int) {
	for i := range n {
		d.ls.PushBack(i)
		d.report("push_back", i, i, nil)
	}

	last := d.ls.Size() - 1
	d.report("set", last, 10, d.ls.Set(last, 10))

	v, err := d.ls.PopBack()
	d.report("pop_back", last, v, err)

	d.report("insert", 2, 99, d.ls.Insert(2, 99))

	v, err = d.ls.PopAt(0)
	d.report("pop_at", 0, v, err)

	d.ls.Clear()
	_, err = d.ls.PopFront()
	d.report("pop_front", 0, 0, err)
}

func main() {
	n := flag.Int("n", 5, "number of values to seed the list with")
	json := flag.Bool("json", false, "log as JSON")
	flag.Parse()

	newLogger := zap.NewDevelopment
	if *json {
		newLogger = zap.NewProduction
	}
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	d := demo{log: logger}
	d.run(*n)
}
