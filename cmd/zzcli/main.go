// Command zzcli is a Cobra-based command line frontend over the ZZ
// engine: one subcommand per kernel operation, for scripting and
// manual testing without writing Go or Lua.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/go-zz/zz"
	"github.com/go-zz/zz/zzlua"
)

func parseArg(s string) (*zz.Int, error) {
	return new(zz.Int).FromString(s, 0)
}

func printResult(z *zz.Int) {
	fmt.Println(z.String())
}

func binaryCmd(use, short string, op func(a, b *zz.Int) (*zz.Int, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			glog.V(1).Infof("%s %s %s", use, a, b)
			z, err := op(a, b)
			if err != nil {
				return err
			}
			printResult(z)
			return nil
		},
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	root := &cobra.Command{
		Use:   "zzcli",
		Short: "Arbitrary-precision integer calculator",
	}

	root.AddCommand(
		binaryCmd("add", "Add two integers", func(a, b *zz.Int) (*zz.Int, error) { return new(zz.Int).Add(a, b) }),
		binaryCmd("sub", "Subtract two integers", func(a, b *zz.Int) (*zz.Int, error) { return new(zz.Int).Sub(a, b) }),
		binaryCmd("mul", "Multiply two integers", func(a, b *zz.Int) (*zz.Int, error) { return new(zz.Int).Mul(a, b) }),
		binaryCmd("div", "Floor-divide two integers", func(a, b *zz.Int) (*zz.Int, error) {
			q, _, err := new(zz.Int).DivMod(a, b, new(zz.Int))
			return q, err
		}),
		binaryCmd("mod", "Floor-mod two integers", func(a, b *zz.Int) (*zz.Int, error) {
			_, m, err := new(zz.Int).DivMod(a, b, new(zz.Int))
			return m, err
		}),
		binaryCmd("pow", "Raise A to the B-th power", func(a, b *zz.Int) (*zz.Int, error) { return new(zz.Int).Pow(a, b) }),
		binaryCmd("gcd", "Greatest common divisor of A and B", zz.GCD),
		newPowmCmd(),
		newGCDExtCmd(),
		newSqrtRemCmd(),
		newUnaryN64Cmd("factorial", "N!", zz.Factorial),
		newUnaryN64Cmd("doublefactorial", "N!!", zz.DoubleFactorial),
		newBinomialCmd(),
		newUnaryN64Cmd("fibonacci", "Nth Fibonacci number", zz.Fibonacci),
		newFormatCmd(),
	)

	if err := root.Execute(); err != nil {
		glog.Fatalf("zzcli: %v", err)
		os.Exit(1)
	}
}

func newPowmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "powm BASE EXP MOD",
		Short: "Modular exponentiation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseArg(args[0])
			if err != nil {
				return err
			}
			exp, err := parseArg(args[1])
			if err != nil {
				return err
			}
			mod, err := parseArg(args[2])
			if err != nil {
				return err
			}
			z, err := new(zz.Int).Exp(base, exp, mod)
			if err != nil {
				return err
			}
			printResult(z)
			return nil
		},
	}
}

func newGCDExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcdext A B",
		Short: "Extended GCD: prints g, x, y such that A*x + B*y = g",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			g, x, y, err := zz.GCDExt(a, b)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s %s\n", g, x, y)
			return nil
		},
	}
}

func newSqrtRemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrtrem N",
		Short: "Integer square root and remainder: prints s, r such that N = s*s + r",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseArg(args[0])
			if err != nil {
				return err
			}
			s, r, err := new(zz.Int).SqrtRem(n)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", s, r)
			return nil
		},
	}
}

func newUnaryN64Cmd(use, short string, op func(n int64) (*zz.Int, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " N",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n int64
			if _, err := fmt.Sscan(args[0], &n); err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[0], err)
			}
			z, err := op(n)
			if err != nil {
				return err
			}
			printResult(z)
			return nil
		},
	}
}

func newBinomialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "binomial N K",
		Short: "Binomial coefficient C(N, K)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n, k int64
			if _, err := fmt.Sscan(args[0], &n); err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[0], err)
			}
			if _, err := fmt.Sscan(args[1], &k); err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[1], err)
			}
			z, err := zz.Binomial(n, k)
			if err != nil {
				return err
			}
			printResult(z)
			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	var spec string
	cmd := &cobra.Command{
		Use:   "format N",
		Short: "Render N using a Python-style format spec (see --spec)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseArg(args[0])
			if err != nil {
				return err
			}
			s, err := zzlua.Format(n, spec)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}
	cmd.Flags().StringVar(&spec, "spec", "", "format spec: [[fill]align][sign][#][0][width][,_][type]")
	return cmd
}
