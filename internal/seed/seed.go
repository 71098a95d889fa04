// Package seed supplies the static demo catalogs and staff roster. The
// booking core never loads data itself; this is the bootstrap
// collaborator that hands it ready-made catalogs at construction time.
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/example/roomsched/internal/directory"
	"github.com/example/roomsched/internal/domain/booking"
)

func Resources() booking.ResourceCatalog {
	return booking.NewResourceCatalog([]booking.Resource{
		mustResource(booking.NewResource(1, "101", 2, decimal.NewFromInt(80_000_000))),
		mustResource(booking.NewResource(2, "102", 3, decimal.NewFromInt(100_000_000))),
	})
}

func Requesters() booking.RequesterCatalog {
	return booking.NewRequesterCatalog([]booking.Requester{
		mustRequester(booking.NewRequester(1, "Marlon", "marlon@example.com", "300123456")),
		mustRequester(booking.NewRequester(2, "Santiago", "santiago@example.com", "300987654")),
	})
}

func Staff() *directory.Directory {
	d := directory.New()
	mustEmployee(d.Add("Ana Torres", directory.RoleReception, "ana@example.com", "front desk"))
	mustEmployee(d.Add("Luis Prada", directory.RoleManager, "luis@example.com", "operations"))
	mustEmployee(d.Add("Rosa Díaz", directory.RoleHousekeeping, "rosa@example.com", "floor 1"))
	return d
}

// Seed data is static; a constructor rejecting it is a programming error.

func mustResource(r booking.Resource, err error) booking.Resource {
	if err != nil {
		panic(err)
	}
	return r
}

func mustRequester(r booking.Requester, err error) booking.Requester {
	if err != nil {
		panic(err)
	}
	return r
}

func mustEmployee(e directory.Employee, err error) directory.Employee {
	if err != nil {
		panic(err)
	}
	return e
}
