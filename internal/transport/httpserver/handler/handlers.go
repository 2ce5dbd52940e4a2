package handler

import (
	catalogdomain "library-app-go/internal/domain/catalog"
	circulationdomain "library-app-go/internal/domain/circulation"
	memberdomain "library-app-go/internal/domain/member"
	userdomain "library-app-go/internal/domain/user"
	"library-app-go/pkg/logger"
)

type Handlers struct {
	Members     *memberdomain.Service
	Catalog     *catalogdomain.Service
	Circulation *circulationdomain.Service
	Users       *userdomain.Service
	log         logger.Logger
}

func New(members *memberdomain.Service, catalog *catalogdomain.Service, circulation *circulationdomain.Service, users *userdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Members:     members,
		Catalog:     catalog,
		Circulation: circulation,
		Users:       users,
		log:         log,
	}
}
