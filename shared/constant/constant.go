package constant

const (
	Empty = ""
)

const (
	BookingTypeService = "Service"
	BookingTypeRepair  = "Repair"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)
