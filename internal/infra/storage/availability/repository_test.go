package availability_test

import (
	"testing"

	availabilityStorage "github.com/pawfinder/PF-SchedulingService/internal/infra/storage/availability"
	availabilitySvc "github.com/pawfinder/PF-SchedulingService/internal/service/availability"
	acceptMission "github.com/pawfinder/PF-SchedulingService/internal/usecase/accept_mission"
	getCalendar "github.com/pawfinder/PF-SchedulingService/internal/usecase/get_calendar"
	getDayStatus "github.com/pawfinder/PF-SchedulingService/internal/usecase/get_day_status"
	getRemainingCapacity "github.com/pawfinder/PF-SchedulingService/internal/usecase/get_remaining_capacity"
	requestBooking "github.com/pawfinder/PF-SchedulingService/internal/usecase/request_booking"
)

// The concrete repository must satisfy every consumer contract it is
// wired to in main.
var (
	_ getCalendar.AvailabilityRepository          = (*availabilityStorage.Repository)(nil)
	_ getRemainingCapacity.AvailabilityRepository = (*availabilityStorage.Repository)(nil)
	_ getDayStatus.AvailabilityRepository         = (*availabilityStorage.Repository)(nil)
	_ acceptMission.AvailabilityRepository        = (*availabilityStorage.Repository)(nil)
	_ requestBooking.AvailabilityRepository       = (*availabilityStorage.Repository)(nil)
	_ availabilitySvc.AvailabilityRepository      = (*availabilityStorage.Repository)(nil)
)

func TestRepositorySatisfiesConsumerContracts(t *testing.T) {
	// Compile-time assertions above are the real check.
}
