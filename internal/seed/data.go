package seed

var (
	roomTypes = []string{"Single", "Double", "Suite"}
	bedTypes  = []string{"Single", "Double", "Queen", "King"}
	amenities = []string{
		"Wi-Fi",
		"TV",
		"Minibar",
		"Air Conditioning",
		"Safe",
		"Balcony",
		"Coffee Maker",
	}
	cancellationPolicies = []string{
		"Free cancellation",
		"Non-refundable",
		"Partial refund",
	}
	jobRoles = []string{
		"Receptionist",
		"Manager",
		"Cleaner",
		"Chef",
		"Concierge",
	}
	firstNames = []string{
		"Lucía", "Hugo", "Martina", "Mateo", "Sofía", "Leo", "Julia", "Daniel",
		"Valeria", "Pablo", "Emma", "Álvaro", "Carmen", "Diego", "Noa", "Marcos",
	}
	lastNames = []string{
		"García", "Rodríguez", "González", "Fernández", "López", "Martínez",
		"Sánchez", "Pérez", "Gómez", "Martín", "Jiménez", "Ruiz", "Hernández",
	}
	requests = []string{
		"Late check-in after midnight",
		"Extra pillows, please",
		"Quiet room away from the elevator",
		"Baby cot in the room",
		"Airport transfer on arrival",
	}
	descriptions = []string{
		"Bright room with views over the old town.",
		"Quiet interior room facing the garden.",
		"Spacious room with a separate sitting area.",
		"Renovated room with a walk-in shower.",
	}
)
