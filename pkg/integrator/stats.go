package integrator

// TraceStats counts the rays traced by an integrator
type TraceStats struct {
	CameraRays          int64
	ShadowRays          int64
	ReflectionRays      int64
	TransmissionRays    int64
	InternalReflections int64 // total internal reflections inside spheres
	DepthCutoffs        int64 // bounces skipped because MaxDepth was reached
}

// Add accumulates other into s
func (s *TraceStats) Add(other TraceStats) {
	s.CameraRays += other.CameraRays
	s.ShadowRays += other.ShadowRays
	s.ReflectionRays += other.ReflectionRays
	s.TransmissionRays += other.TransmissionRays
	s.InternalReflections += other.InternalReflections
	s.DepthCutoffs += other.DepthCutoffs
}

// TotalRays returns the number of rays of every kind
func (s TraceStats) TotalRays() int64 {
	return s.CameraRays + s.ShadowRays + s.ReflectionRays + s.TransmissionRays
}
