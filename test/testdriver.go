package test

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"voyager.com/fivecard/gamescript"
	"voyager.com/fivecard/logging"
)

const testDriverLoggerName = "test::testdriver"

type ScriptTestResult struct {
	Filename string
	Title    string
	Passed   bool
	Failures []error
	Disabled bool
}

func (s *ScriptTestResult) addError(e error) {
	s.Failures = append(s.Failures, e)
}

// runs game scripts and captures the results
// and output the results at the end
type TestDriver struct {
	ScriptResult map[string]*ScriptTestResult
	ScriptFiles  []string
	out          io.Writer
}

func NewTestDriver(out io.Writer) *TestDriver {
	if out == nil {
		out = os.Stdout
	}
	return &TestDriver{
		ScriptResult: make(map[string]*ScriptTestResult),
		ScriptFiles:  make([]string, 0),
		out:          out,
	}
}

func (t *TestDriver) RunGameScript(filename string) error {
	result := &ScriptTestResult{Filename: filename, Failures: make([]error, 0)}
	t.ScriptResult[filename] = result
	t.ScriptFiles = append(t.ScriptFiles, filename)

	// load game script
	script, err := gamescript.ReadGameScript(filename)
	if err != nil {
		logging.SubLogger(testDriverLoggerName).Error().Err(err).Str("script", filename).Msg("Failed to load game script")
		result.addError(err)
		return err
	}
	result.Title = script.Title
	if script.Disabled {
		result.Disabled = true
		return nil
	}

	run := &gameScriptRun{
		script: script,
		result: result,
	}
	err = run.run()
	if err != nil {
		result.addError(err)
	}
	result.Passed = len(result.Failures) == 0
	return err
}

func (t *TestDriver) ReportResult() bool {
	passed := true
	for _, scriptFile := range t.ScriptFiles {
		result := t.ScriptResult[scriptFile]
		if result.Disabled {
			fmt.Fprintf(t.out, "Script %s is disabled\n", result.Filename)
			continue
		}

		if len(result.Failures) != 0 {
			passed = false
			// failed and report errors
			fmt.Fprintf(t.out, "Script %s failed\n", scriptFile)
			fmt.Fprintf(t.out, "===========================\n")
			for _, e := range result.Failures {
				fmt.Fprintf(t.out, "%s\n", e.Error())
			}
			fmt.Fprintf(t.out, "===========================\n")
		}
	}
	return passed
}

// RunGameScriptTests runs every YAML script in dir and reports the results.
// It returns false if any script failed.
func RunGameScriptTests(dir string, out io.Writer) (bool, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return false, err
	}
	names := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if !strings.HasSuffix(file.Name(), ".yaml") && !strings.HasSuffix(file.Name(), ".yml") {
			continue
		}
		names = append(names, filepath.Join(dir, file.Name()))
	}
	sort.Strings(names)

	testDriver := NewTestDriver(out)
	for _, name := range names {
		testDriver.RunGameScript(name)
	}

	passed := testDriver.ReportResult()
	if passed {
		fmt.Fprintf(testDriver.out, "All scripts passed\n")
	} else {
		fmt.Fprintf(testDriver.out, "One or more scripts failed\n")
	}
	return passed, nil
}
