package dataset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var contourExtensions = map[string]struct{}{
	".txt":     {},
	".contour": {},
}

type classFolder struct {
	label string
	path  string
}

// classFolders lists the subdirectories of root; each name is a label.
func classFolders(root string) ([]classFolder, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var result []classFolder
	for _, de := range dirs {
		if de.IsDir() && !strings.HasPrefix(de.Name(), ".") {
			result = append(result, classFolder{
				label: de.Name(),
				path:  filepath.Join(root, de.Name()),
			})
		}
	}
	return result, nil
}

func contourFiles(folderPath string) ([]string, error) {
	dirs, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, err
	}
	var result []string
	for _, de := range dirs {
		if de.IsDir() {
			continue
		}
		if _, ok := contourExtensions[strings.ToLower(filepath.Ext(de.Name()))]; ok {
			result = append(result, filepath.Join(folderPath, de.Name()))
		}
	}
	sort.Strings(result)
	return result, nil
}
