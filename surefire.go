package main

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Surefire report structures as emitted by the engine. The format is owned by
// the engine; only the fields the viewer needs are mapped.
type surefireSuite struct {
	XMLName  xml.Name       `xml:"testsuite"`
	Name     string         `xml:"name,attr"`
	Tests    int            `xml:"tests,attr"`
	Failures int            `xml:"failures,attr"`
	Errors   int            `xml:"errors,attr"`
	Cases    []surefireCase `xml:"testcase"`
}

type surefireCase struct {
	Name      string           `xml:"name,attr"`
	Classname string           `xml:"classname,attr"`
	Failure   *surefireProblem `xml:"failure"`
	Error     *surefireProblem `xml:"error"`
}

type surefireProblem struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// parseSurefireReports collects every failed test case from the TEST-*.xml
// reports under dir.
func parseSurefireReports(dir string) ([]TestFailure, error) {
	reports, err := filepath.Glob(filepath.Join(dir, "TEST-*.xml"))
	if err != nil {
		return nil, err
	}

	var failures []TestFailure
	for _, report := range reports {
		data, err := os.ReadFile(report)
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", filepath.Base(report), err)
		}

		var suite surefireSuite
		if err := xml.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("failed to parse report %s: %w", filepath.Base(report), err)
		}

		failures = append(failures, suiteFailures(suite)...)
	}

	return failures, nil
}

func suiteFailures(suite surefireSuite) []TestFailure {
	var failures []TestFailure
	for _, testCase := range suite.Cases {
		problem := testCase.Failure
		if problem == nil {
			problem = testCase.Error
		}
		if problem == nil {
			continue
		}

		module := testCase.Classname
		if module == "" {
			module = suite.Name
		}

		failures = append(failures, TestFailure{
			Module:   module,
			TestName: testCase.Name,
			Message:  firstNonEmpty(problem.Message, problem.Type),
			Detail:   strings.TrimSpace(problem.Body),
		})
	}
	return failures
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
