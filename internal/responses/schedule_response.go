package responses

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"start_time"`
	FinishTime     int    `json:"finish_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type IntervalResponse struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type ScheduleResponse struct {
	Algorithm             string             `json:"algorithm"`
	TimeQuantum           int                `json:"time_quantum,omitempty"`
	TotalTime             int                `json:"total_time"`
	BusyTime              int                `json:"busy_time"`
	IdleTime              int                `json:"idle_time"`
	ContextSwitches       int                `json:"context_switches"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Timeline              []IntervalResponse `json:"timeline"`
	Details               []ProcessResponse  `json:"details"`
}

type AlgorithmResponse struct {
	Id              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Preemptive      bool     `json:"preemptive"`
	Characteristics []string `json:"characteristics"`
}
