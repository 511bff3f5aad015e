package driver

import (
	"fleet/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	assignedOrders := d.AssignedOrders
	if assignedOrders == nil {
		assignedOrders = []string{}
	}

	return &entities.Driver{
		ID:             d.DriverID,
		Name:           d.Name,
		Phone:          d.Phone,
		Status:         entities.DriverStatusType(d.Status),
		AssignedOrders: assignedOrders,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{}

	if driverModify.ID != nil {
		driverDB.DriverID = driverModify.ID
	}
	if driverModify.Name != nil {
		driverDB.Name = driverModify.Name
	}
	if driverModify.Phone != nil {
		driverDB.Phone = driverModify.Phone
	}
	if driverModify.Status != nil {
		status := driverModify.Status.String()
		driverDB.Status = &status
	}

	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
