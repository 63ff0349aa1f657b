package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-underbar/arr"
	"github.com/hasbyte1/go-underbar/object"
)

// arrayCmd builds a sub-command whose documents must all be arrays.
func (a *app) arrayCmd(use, short string, args cobra.PositionalArgs, run func(*cobra.Command, [][]any) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, raw []string) error {
			docs, err := documents(cmd, raw)
			if err != nil {
				return err
			}
			arrays, err := asArrays(docs)
			if err != nil {
				return err
			}
			a.logger.Debug("decoded arrays", zap.String("op", cmd.Name()), zap.Int("documents", len(arrays)))
			var out any
			if err := guard(func() (err error) {
				out, err = run(cmd, arrays)
				return err
			}); err != nil {
				return err
			}
			return emit(cmd, out)
		},
	}
}

// single rejects more than one document for commands that work on one array.
func single(arrays [][]any) ([]any, error) {
	if len(arrays) != 1 {
		return nil, fmt.Errorf("%w: want exactly one array, got %d", errShape, len(arrays))
	}
	return arrays[0], nil
}

func (a *app) uniqCmd() *cobra.Command {
	return a.arrayCmd("uniq [array]", "Remove repeated values, keeping first occurrences", cobra.MaximumNArgs(1),
		func(_ *cobra.Command, arrays [][]any) (any, error) {
			items, err := single(arrays)
			if err != nil {
				return nil, err
			}
			return arr.Uniq(items), nil
		})
}

func (a *app) flattenCmd() *cobra.Command {
	return a.arrayCmd("flatten [array]", "Flatten nested arrays into one level", cobra.MaximumNArgs(1),
		func(_ *cobra.Command, arrays [][]any) (any, error) {
			items, err := single(arrays)
			if err != nil {
				return nil, err
			}
			return arr.Flatten(items), nil
		})
}

func (a *app) zipCmd() *cobra.Command {
	return a.arrayCmd("zip [array...]", "Merge arrays by position; short arrays contribute null", cobra.ArbitraryArgs,
		func(_ *cobra.Command, arrays [][]any) (any, error) {
			rows := arr.Zip(arrays...)
			out := make([][]any, len(rows))
			for i, row := range rows {
				out[i] = arr.Pluck(row, func(o mo.Option[any]) any { return o.OrElse(nil) })
			}
			return out, nil
		})
}

func (a *app) setCmd(name, short string) *cobra.Command {
	op := arr.Intersection[any]
	if name == "difference" {
		op = arr.Difference[any]
	}
	return a.arrayCmd(name+" [array...]", short, cobra.ArbitraryArgs,
		func(_ *cobra.Command, arrays [][]any) (any, error) {
			return op(arrays...), nil
		})
}

func (a *app) shuffleCmd() *cobra.Command {
	var seed uint64
	cmd := a.arrayCmd("shuffle [array]", "Return the values in random order", cobra.MaximumNArgs(1),
		func(cmd *cobra.Command, arrays [][]any) (any, error) {
			items, err := single(arrays)
			if err != nil {
				return nil, err
			}
			if cmd.Flags().Changed("seed") {
				return arr.ShuffleRand(items, rand.New(rand.NewPCG(seed, seed))), nil
			}
			return arr.Shuffle(items), nil
		})
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible order")
	return cmd
}

func (a *app) sortByCmd() *cobra.Command {
	var key string
	cmd := a.arrayCmd("sort-by [array]", "Sort ascending by a property, or by the values themselves", cobra.MaximumNArgs(1),
		func(_ *cobra.Command, arrays [][]any) (any, error) {
			items, err := single(arrays)
			if err != nil {
				return nil, err
			}
			by := arr.Iteratee[any]{}
			if key != "" {
				by = arr.ByKey[any](key)
			}
			return arr.SortBy(items, by), nil
		})
	cmd.Flags().StringVarP(&key, "key", "k", "", "property path to sort by (dot separated)")
	return cmd
}

func (a *app) pluckCmd() *cobra.Command {
	var key string
	cmd := a.arrayCmd("pluck [array]", "Extract one property from every element", cobra.MaximumNArgs(1),
		func(_ *cobra.Command, arrays [][]any) (any, error) {
			items, err := single(arrays)
			if err != nil {
				return nil, err
			}
			return arr.PluckKey(items, key), nil
		})
	cmd.Flags().StringVarP(&key, "key", "k", "", "property path to extract (dot separated)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

// edgeCmd builds "first" and "last": one element by default, the first or
// last n as an array with -n.
func (a *app) edgeCmd(name string) *cobra.Command {
	one, many := arr.First[any], arr.FirstN[any]
	if name == "last" {
		one, many = arr.Last[any], arr.LastN[any]
	}
	var n int
	cmd := a.arrayCmd(name+" [array]", "Return the "+name+" element, or the "+name+" n elements", cobra.MaximumNArgs(1),
		func(cmd *cobra.Command, arrays [][]any) (any, error) {
			items, err := single(arrays)
			if err != nil {
				return nil, err
			}
			if cmd.Flags().Changed("count") {
				return many(items, n), nil
			}
			v, _ := one(items)
			return v, nil
		})
	cmd.Flags().IntVarP(&n, "count", "n", 1, "number of elements")
	return cmd
}

func (a *app) containsCmd() *cobra.Command {
	var value string
	cmd := a.arrayCmd("contains [array]", "Report whether the array holds a value", cobra.MaximumNArgs(1),
		func(_ *cobra.Command, arrays [][]any) (any, error) {
			items, err := single(arrays)
			if err != nil {
				return nil, err
			}
			return arr.Contains(items, parseValue(value)), nil
		})
	cmd.Flags().StringVar(&value, "value", "", "JSON value to look for")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

// mergeCmd builds "extend" and "defaults" over JSON objects.
func (a *app) mergeCmd(name, short string) *cobra.Command {
	op := object.Extend[any]
	if name == "defaults" {
		op = object.Defaults[any]
	}
	return &cobra.Command{
		Use:   name + " object [source...]",
		Short: short,
		RunE: func(cmd *cobra.Command, raw []string) error {
			docs, err := documents(cmd, raw)
			if err != nil {
				return err
			}
			objs, err := asObjects(docs)
			if err != nil {
				return err
			}
			a.logger.Debug("merging objects",
				zap.String("op", name),
				zap.Strings("target_keys", object.Keys(objs[0])),
				zap.Int("sources", len(objs)-1))
			return emit(cmd, op(objs[0], objs[1:]...))
		},
	}
}
