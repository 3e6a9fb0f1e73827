package layout

import (
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/shibukawa/configdir"

	"github.com/xxxserxxx/gogauge"
)

var builtins = map[string]string{
	"default":     "2:cpu 2:mem temp\ndisk net",
	"minimal":     "cpu@semi mem@semi",
	"battery":     "cpu/2 batt@semi\nmem@hbar\ntemp disk net",
	"kitchensink": "3:cpu/2 3:mem@semi\n3:swap@hbar\n2:temp@vbar/2 3:disk 2:batt@semi\n3:net\npower@hbar",
}

// Builtins lists the names of the layouts compiled into the program.
func Builtins() []string {
	rv := make([]string, 0, len(builtins))
	for n := range builtins {
		rv = append(rv, n)
	}
	sort.Strings(rv)
	return rv
}

// GetLayout returns the layout named by conf.Layout: "-" for stdin, a
// built-in name, or a file in one of the config folders.
func GetLayout(conf gogauge.Config) (io.Reader, error) {
	if conf.Layout == "-" {
		return os.Stdin, nil
	}
	if l, ok := builtins[conf.Layout]; ok {
		return strings.NewReader(l), nil
	}
	folder := conf.ConfigDir.QueryFolderContainsFile(conf.Layout)
	if folder == nil {
		paths := make([]string, 0)
		for _, d := range conf.ConfigDir.QueryFolders(configdir.Existing) {
			paths = append(paths, d.Path)
		}
		return nil, errors.New(conf.Tr.Value("error.findlayout", conf.Layout, strings.Join(paths, ", ")))
	}
	lo, err := folder.ReadFile(conf.Layout)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(string(lo)), nil
}
