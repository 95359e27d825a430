package database

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/fulldump/inceptionpool/collection"
	"github.com/fulldump/inceptionpool/pool"
	"github.com/fulldump/inceptionpool/utils"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	// MaxPoolSize bounds the number of elements of every pool, 0 is unbounded
	MaxPoolSize int
}

type Database struct {
	Config      *Config
	status      string
	statusMutex *sync.RWMutex
	collections map[string]*collection.Collection
	mutex       *sync.RWMutex
	exit        chan struct{}
	stopOnce    *sync.Once
}

func NewDatabase(config *Config) *Database { // todo: return error?
	if config == nil {
		config = &Config{}
	}
	s := &Database{
		Config:      config,
		status:      StatusOpening,
		statusMutex: &sync.RWMutex{},
		collections: map[string]*collection.Collection{},
		mutex:       &sync.RWMutex{},
		exit:        make(chan struct{}),
		stopOnce:    &sync.Once{},
	}

	return s
}

func (db *Database) GetStatus() string {
	db.statusMutex.RLock()
	defer db.statusMutex.RUnlock()
	return db.status
}

func (db *Database) setStatus(status string) {
	db.statusMutex.Lock()
	db.status = status
	db.statusMutex.Unlock()
}

func (db *Database) CreateCollection(name string) (*collection.Collection, error) {

	db.mutex.Lock()
	defer db.mutex.Unlock()

	_, exists := db.collections[name]
	if exists {
		return nil, fmt.Errorf("collection '%s' already exists", name)
	}

	col := collection.NewCollection(name, &pool.Config{
		MaxSize: db.Config.MaxPoolSize,
	})
	db.collections[name] = col

	log.Debug().Str("name", name).Str("id", col.Id).Msg("collection created")

	return col, nil
}

func (db *Database) GetCollection(name string) (*collection.Collection, bool) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	col, exists := db.collections[name]
	return col, exists
}

// ListCollections returns collections sorted by name.
func (db *Database) ListCollections() []*collection.Collection {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	result := make([]*collection.Collection, 0, len(db.collections))
	for _, name := range utils.GetKeys(db.collections) {
		result = append(result, db.collections[name])
	}

	return result
}

func (db *Database) DropCollection(name string) error {

	db.mutex.Lock()
	defer db.mutex.Unlock()

	col, exists := db.collections[name]
	if !exists {
		return fmt.Errorf("collection '%s' not found", name)
	}

	delete(db.collections, name)
	col.Clear()

	log.Debug().Str("name", name).Msg("collection dropped")

	return nil
}

// Load marks the database as operating. Pools live only in memory so there
// is nothing to read back.
func (db *Database) Load() error {
	log.Info().Int("max_pool_size", db.Config.MaxPoolSize).Msg("loading database")
	db.setStatus(StatusOperating)
	return nil
}

func (db *Database) Start() error {

	err := db.Load()
	if err != nil {
		return err
	}

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	db.stopOnce.Do(func() {
		defer close(db.exit)

		db.setStatus(StatusClosing)

		for _, col := range db.ListCollections() {
			log.Info().Str("name", col.Name).Int("size", col.Size()).Msg("closing collection")
		}
	})

	return nil
}
