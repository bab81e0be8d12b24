package converter

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/util"
	"golang.org/x/exp/slices"
)

// Input is one TransXChange document, either a file on disk or an entry of a zip bundle
type Input struct {
	Name string
	open func() (io.ReadCloser, error)
}

func (i Input) Open() (io.ReadCloser, error) {
	return i.open()
}

// Inputs is the ordered list of documents to convert. Zip bundles stay open until Close.
type Inputs struct {
	Documents []Input
	archives  []*zip.ReadCloser
}

func (i *Inputs) Close() error {
	var firstErr error
	for _, archive := range i.archives {
		if err := archive.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	i.archives = nil

	return firstErr
}

func isXML(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".xml")
}

func isZip(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}

// FileInput is a document read from path
func FileInput(path string) Input {
	return Input{
		Name: path,
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// Collect expands paths into documents. Directories are walked for xml files and zip bundles, both
// in lexical order, and zip bundles are read for their xml entries in archive order. A path given
// more than once is only collected the first time.
func Collect(paths []string) (*Inputs, error) {
	inputs := &Inputs{}

	for _, path := range util.RemoveDuplicateStrings(paths, nil) {
		info, err := os.Stat(path)
		if err != nil {
			inputs.Close()
			return nil, errors.Wrap(err, "reading input")
		}

		if info.IsDir() {
			err = inputs.addDirectory(path)
		} else {
			err = inputs.addFile(path)
		}
		if err != nil {
			inputs.Close()
			return nil, err
		}
	}

	log.Info().Int("documents", len(inputs.Documents)).Int("bundles", len(inputs.archives)).Msg("Collected inputs")

	return inputs, nil
}

func (i *Inputs) addDirectory(root string) error {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && (isXML(path) || isZip(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "walking %s", root)
	}

	slices.Sort(files)
	for _, file := range files {
		if err := i.addFile(file); err != nil {
			return err
		}
	}

	return nil
}

func (i *Inputs) addFile(path string) error {
	if !isZip(path) {
		i.Documents = append(i.Documents, FileInput(path))
		return nil
	}

	archive, err := zip.OpenReader(path)
	if err != nil {
		return errors.Wrapf(err, "opening bundle %s", path)
	}
	i.archives = append(i.archives, archive)

	for _, file := range archive.File {
		if file.FileInfo().IsDir() || !isXML(file.Name) {
			continue
		}

		i.Documents = append(i.Documents, Input{
			Name: path + "!" + file.Name,
			open: file.Open,
		})
	}

	return nil
}
