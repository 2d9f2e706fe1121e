package app

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// readPackageVersion returns the "version" field of a package.json file.
func readPackageVersion(readFile func(string) ([]byte, error), path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%s is not valid JSON", path)
	}
	version := gjson.GetBytes(data, "version")
	if version.Type != gjson.String || version.String() == "" {
		return "", fmt.Errorf("%s has no version string", path)
	}
	return version.String(), nil
}
