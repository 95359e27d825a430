package service

import (
	"fmt"
	"strings"

	"github.com/fulldump/inceptionpool/collection"
	"github.com/fulldump/inceptionpool/database"
)

type Service struct {
	db *database.Database
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) CreatePool(name string) (*collection.Collection, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrorInvalidPoolName)
	}

	_, exist := s.db.GetCollection(name)
	if exist {
		return nil, ErrorPoolAlreadyExists
	}

	col, err := s.db.CreateCollection(name)
	if err != nil {
		// lost a race with another create
		return nil, fmt.Errorf("%w: %s", ErrorPoolAlreadyExists, err.Error())
	}

	return col, nil
}

func (s *Service) GetPool(name string) (*collection.Collection, error) {
	col, exist := s.db.GetCollection(name)
	if !exist {
		return nil, ErrorPoolNotFound
	}

	return col, nil
}

func (s *Service) ListPools() []*collection.Collection {
	return s.db.ListCollections()
}

func (s *Service) DeletePool(name string) error {
	_, exist := s.db.GetCollection(name)
	if !exist {
		return ErrorPoolNotFound
	}

	err := s.db.DropCollection(name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrorPoolNotFound, err.Error())
	}

	return nil
}
