package dataset

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/ChizhovVadim/cellclass/internal/domain"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type IDatasetProvider interface {
	Load(ctx context.Context, dataset chan<- domain.DatasetItem) error
}

type fileTask struct {
	label string
	path  string
}

// DatasetProvider reads contour files from Folder. When Labeled is set every
// subdirectory of Folder is a class and its name is the label.
// Unreadable files are logged and skipped.
type DatasetProvider struct {
	Folder  string
	Labeled bool
	Threads int
}

func (dp *DatasetProvider) Load(
	ctx context.Context,
	dataset chan<- domain.DatasetItem,
) error {
	log.Println("load dataset started", "folder", dp.Folder)
	defer log.Println("load dataset finished")

	g, ctx := errgroup.WithContext(ctx)

	var files = make(chan fileTask, 128)
	var results = make(chan domain.DatasetItem, 128)

	g.Go(func() error {
		defer close(files)
		return dp.loadFiles(ctx, files)
	})

	g.Go(func() error {
		return dp.mergeDataset(ctx, results, dataset)
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < max(1, dp.Threads); i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return dp.analyzeFiles(ctx, files, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	return g.Wait()
}

func (dp *DatasetProvider) loadFiles(ctx context.Context, files chan<- fileTask) error {
	var folders = []classFolder{{path: dp.Folder}}
	if dp.Labeled {
		var err error
		folders, err = classFolders(dp.Folder)
		if err != nil {
			return err
		}
		if len(folders) == 0 {
			return errors.Errorf("no class folders in %v", dp.Folder)
		}
	}
	for _, folder := range folders {
		paths, err := contourFiles(folder.path)
		if err != nil {
			return err
		}
		log.Println("loadFiles", "label", folder.label, "files", len(paths))
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case files <- fileTask{label: folder.label, path: path}:
			}
		}
	}
	return nil
}

func (dp *DatasetProvider) analyzeFiles(
	ctx context.Context,
	files <-chan fileTask,
	results chan<- domain.DatasetItem,
) error {
	for task := range files {
		objects, err := LoadObjects(task.path)
		if err != nil {
			log.Println("skip file", task.path, err)
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- domain.DatasetItem{Label: task.label, Path: task.path, Objects: objects}:
		}
	}
	return nil
}

func (dp *DatasetProvider) mergeDataset(
	ctx context.Context,
	input <-chan domain.DatasetItem,
	output chan<- domain.DatasetItem,
) error {
	var fileCount, objectCount int
	for item := range input {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case output <- item:
		}
		fileCount++
		objectCount += len(item.Objects)
	}
	log.Println("mergeDataset",
		"files", fileCount,
		"objects", objectCount)
	return nil
}

// LoadAll drains a provider and returns its items ordered by label and path.
func LoadAll(ctx context.Context, provider IDatasetProvider) ([]domain.DatasetItem, error) {
	g, ctx := errgroup.WithContext(ctx)

	var dataset = make(chan domain.DatasetItem, 128)

	g.Go(func() error {
		defer close(dataset)
		return provider.Load(ctx, dataset)
	})

	var result []domain.DatasetItem

	g.Go(func() error {
		for item := range dataset {
			result = append(result, item)
		}
		return nil
	})

	var err = g.Wait()
	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Label != result[j].Label {
			return result[i].Label < result[j].Label
		}
		return result[i].Path < result[j].Path
	})
	return result, nil
}
