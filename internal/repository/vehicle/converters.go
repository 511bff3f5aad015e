package vehicle

import (
	"fleet/internal/entities"
)

func ToDomain(v *VehicleDB) *entities.Vehicle {
	if v == nil {
		return nil
	}

	assignedOrders := v.AssignedOrders
	if assignedOrders == nil {
		assignedOrders = []string{}
	}

	return &entities.Vehicle{
		ID:             v.VehicleID,
		Name:           v.Name,
		Type:           entities.VehicleType(v.VehicleType),
		Available:      v.Available,
		AssignedOrders: assignedOrders,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromDomainModify(vehicleModify *entities.VehicleModify) *VehicleModifyDB {
	if vehicleModify == nil {
		return nil
	}
	vehicleDB := &VehicleModifyDB{}

	if vehicleModify.ID != nil {
		vehicleDB.VehicleID = vehicleModify.ID
	}
	if vehicleModify.Name != nil {
		vehicleDB.Name = vehicleModify.Name
	}
	if vehicleModify.Type != nil {
		vehicleType := vehicleModify.Type.String()
		vehicleDB.VehicleType = &vehicleType
	}
	if vehicleModify.Available != nil {
		vehicleDB.Available = vehicleModify.Available
	}

	return vehicleDB
}

func ToDomainList(vehiclesDB []VehicleDB) []entities.Vehicle {
	if len(vehiclesDB) == 0 {
		return []entities.Vehicle{}
	}

	result := make([]entities.Vehicle, len(vehiclesDB))
	for i, vehicleDB := range vehiclesDB {
		result[i] = *ToDomain(&vehicleDB)
	}
	return result
}
