package scheduler

import (
	"math"

	"github.com/tbielak/cram/internal/domain"
)

const (
	// HoursPerMaterial is the study-hour estimate per attached material.
	HoursPerMaterial = 2.0
	// MinimumCourseHours floors the estimate for courses with few or no
	// materials.
	MinimumCourseHours = 1.0
)

// EstimateHours derives a course's total remaining study hours from its
// material count.
func EstimateHours(materialCount int) float64 {
	return domain.Round2(math.Max(MinimumCourseHours, float64(materialCount)*HoursPerMaterial))
}
