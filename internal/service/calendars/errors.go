package calendars

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда ресурс не найден
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrNameTaken возвращается, когда имя уже занято другим ресурсом
	ErrNameTaken = errors.New("calendar name already taken")

	// ErrCalendarHasBookings возвращается при удалении ресурса, на который есть брони
	ErrCalendarHasBookings = errors.New("calendar has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNoFieldsToUpdate возвращается, если в запросе на обновление нет ни одного поля
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
