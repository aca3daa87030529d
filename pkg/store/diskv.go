package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/team"
)

// Buckets partition the store by record kind.
const (
	bucketTasks      = "tasks"
	bucketDevelopers = "developers"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("store: not found")

// Persistence is the planner's storage contract. The scheduling core only
// reads snapshots and writes task dates through UpdateTaskDates; every
// other mutation belongs to the surrounding CRUD surface.
type Persistence interface {
	ListTasks(ctx context.Context) []*task.Task
	GetTask(ctx context.Context, id string) (*task.Task, error)
	StoreTask(t *task.Task) error
	DeleteTask(t *task.Task) error

	// UpdateTaskDates writes new start/end dates for one task and nothing
	// else. It is the single write entry point used by reschedules.
	UpdateTaskDates(ctx context.Context, id string, start, end time.Time) (*task.Task, error)

	ListDevelopers(ctx context.Context) []team.Developer
	StoreDeveloper(d *team.Developer) error
	DeleteDeveloper(id string) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) readTask(key string) (*task.Task, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	t := &task.Task{}
	if err := json.Unmarshal(val, t); err != nil {
		return nil, err
	}
	if t.Schema == "" {
		t.Schema = task.CurrentSchema
	}
	pk := keyToPathTransform(key)
	t.ID = pk.FileName
	return t, nil
}

func (p *persistence) ListTasks(ctx context.Context) []*task.Task {
	all := make([]*task.Task, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); pk.Path[0] != bucketTasks {
			continue
		}
		t, err := p.readTask(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, t)
	}
	sortTasks(all)
	return all
}

func (p *persistence) GetTask(ctx context.Context, id string) (*task.Task, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	t, err := p.readTask(taskKey(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (p *persistence) StoreTask(t *task.Task) error {
	if t.Schema == "" {
		t.Schema = task.CurrentSchema
	}
	key := toTaskKey(t)
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) DeleteTask(t *task.Task) error {
	if t.ID == "" {
		return ErrNotFound
	}
	return p.d.Erase(taskKey(t.ID))
}

func (p *persistence) UpdateTaskDates(ctx context.Context, id string, start, end time.Time) (*task.Task, error) {
	t, err := p.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Start = task.On(start)
	t.End = task.On(end)
	if err := p.StoreTask(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *persistence) readDeveloper(key string) (*team.Developer, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	d := &team.Developer{}
	if err := json.Unmarshal(val, d); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	d.ID = pk.FileName
	return d, nil
}

func (p *persistence) ListDevelopers(ctx context.Context) []team.Developer {
	all := make([]team.Developer, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); pk.Path[0] != bucketDevelopers {
			continue
		}
		d, err := p.readDeveloper(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, *d)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Name == all[j].Name {
			return all[i].ID < all[j].ID
		}
		return all[i].Name < all[j].Name
	})
	return all
}

func (p *persistence) StoreDeveloper(d *team.Developer) error {
	key := toDeveloperKey(d)
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) DeleteDeveloper(id string) error {
	if id == "" {
		return ErrNotFound
	}
	return p.d.Erase(developerKey(id))
}

func sortTasks(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		left := tasks[i]
		right := tasks[j]
		if left == nil || right == nil {
			return left != nil
		}
		if left.Start.Equal(right.Start.Time) {
			return left.ID < right.ID
		}
		return left.Start.Before(right.Start.Time)
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toTaskKey makes `tasks-<id>`, minting an id from the content when absent.
func toTaskKey(t *task.Task) string {
	if t.ID == "" {
		b, _ := json.Marshal(t)
		id := md5.Sum(b)
		t.ID = fmt.Sprintf("%x", id[:8])
	}
	return taskKey(t.ID)
}

func taskKey(id string) string {
	return fmt.Sprintf("%s-%s", bucketTasks, id)
}

func toDeveloperKey(d *team.Developer) string {
	if d.ID == "" {
		b, _ := json.Marshal(d)
		id := md5.Sum(b)
		d.ID = fmt.Sprintf("%x", id[:8])
	}
	return developerKey(d.ID)
}

func developerKey(id string) string {
	return fmt.Sprintf("%s-%s", bucketDevelopers, id)
}
