package manifest

import (
	"os"
	"path/filepath"

	"github.com/ardnew/mung"

	"github.com/ardnew/argot/pkg"
)

// EnvPath names the environment variable listing directories searched for
// manifests, separated by [os.PathListSeparator].
const EnvPath = "ARGOT_PATH"

// Extensions are appended in turn to a manifest name when searching.
var Extensions = []string{"", ".yaml", ".yml"}

// SearchPath returns the directories searched for manifests: the
// configuration directory followed by each entry of [EnvPath].
func SearchPath() []string {
	list := mung.Make(
		mung.WithSubjectItems(os.Getenv(EnvPath)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(pkg.ConfigDir()),
	).String()

	var dirs []string

	for _, dir := range filepath.SplitList(list) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// Search resolves name to a manifest file. A name that is [Stdin] or an
// existing file is returned as is; otherwise each directory of
// [SearchPath] is tried with each of [Extensions].
func Search(name string) (string, error) {
	if name == Stdin || isFile(name) {
		return name, nil
	}

	if !filepath.IsAbs(name) {
		for _, dir := range SearchPath() {
			for _, ext := range Extensions {
				if path := filepath.Join(dir, name+ext); isFile(path) {
					return path, nil
				}
			}
		}
	}

	return "", pkg.ErrManifestNotFound.Wrapf("%s", name)
}

func isFile(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
