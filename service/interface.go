package service

import (
	"errors"

	"github.com/fulldump/inceptionpool/collection"
)

var ErrorPoolNotFound = errors.New("pool not found")
var ErrorPoolAlreadyExists = errors.New("pool already exists")
var ErrorInvalidPoolName = errors.New("invalid pool name")

type Servicer interface { // todo: review naming
	CreatePool(name string) (*collection.Collection, error)
	GetPool(name string) (*collection.Collection, error)
	ListPools() []*collection.Collection
	DeletePool(name string) error
}
