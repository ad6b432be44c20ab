package calendar

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда календарь не найден
	ErrCalendarNotFound = errors.New("calendar.repository: calendar not found")

	// ErrNameTaken возвращается при нарушении уникальности имени
	ErrNameTaken = errors.New("calendar.repository: calendar name already taken")

	// ErrCalendarReferenced возвращается при удалении календаря, на который ссылаются брони
	ErrCalendarReferenced = errors.New("calendar.repository: calendar is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
