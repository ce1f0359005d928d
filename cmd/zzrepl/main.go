// Command zzrepl is an interactive shell over the ZZ engine: each line
// is evaluated as a Lua expression against the "zz" module, letting a
// user exercise big-integer arithmetic without writing a program.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	lua "github.com/yuin/gopher-lua"

	"github.com/go-zz/zz/internal/replline"
	"github.com/go-zz/zz/zzlua"
)

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zzrepl_history")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	L := lua.NewState()
	defer L.Close()
	zzlua.Register(L)

	reader := replline.NewReader(&replline.Config{
		Prompt:      "zz> ",
		HistoryFile: historyPath(),
	})

	glog.Infof("zzrepl starting, history file %s", historyPath())

	for {
		line, err := reader.ReadLine()
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			glog.Fatalf("reading input: %v", err)
		}
		if line == "" {
			continue
		}
		if err := evalLine(L, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

// evalLine runs line as a Lua chunk, printing the result of a bare
// expression the way a calculator REPL would: `tostring(<line>)` first
// (so zz.Int/zz.Rat userdata prints via their __tostring metamethod),
// falling back to executing it as a bare statement when it doesn't
// parse as an expression (e.g. `local x = 5`).
func evalLine(L *lua.LState, line string) error {
	if err := L.DoString("return tostring(" + line + ")"); err == nil {
		result := L.Get(-1)
		L.Pop(1)
		fmt.Println(result.String())
		return nil
	}
	return L.DoString(line)
}
