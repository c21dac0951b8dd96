package sqlinline

const QMetricsSummary = `--sql 161e6400-decc-4214-b32a-bcf24bd9f752
with current_metrics as (
  select
    count(distinct user_id) as total_users,
    count(distinct case when date >= current_date - interval '1 day' then user_id end) as dau,
    count(distinct case when date >= current_date - interval '7 days' then user_id end) as wau,
    count(distinct case when date >= current_date - interval '30 days' then user_id end) as mau,
    round(avg(time_spent), 1) as avg_session_time,
    round(avg(case when lesson_completed then 1.0 else 0.0 end) * 100, 1) as completion_rate,
    count(distinct case when subscription_type = 'premium' then user_id end) * 100.0 /
      nullif(count(distinct user_id), 0) as premium_rate
  from activity
),
retention_metrics as (
  select
    count(distinct case when first_date = return_date - interval '1 day' then user_id end) * 100.0 /
      nullif(count(distinct user_id), 0) as day1_retention
  from (
    select user_id, min(date) over (partition by user_id) as first_date, date as return_date
    from activity
    group by user_id, date
  ) t
)
select total_users, dau, wau, mau,
       coalesce(avg_session_time, 0),
       coalesce(completion_rate, 0),
       coalesce(premium_rate, 0),
       coalesce(day1_retention, 0)
from current_metrics, retention_metrics;
`

const QDailyTrends = `--sql cdab0269-3360-4c8f-beeb-02f66ce3a278
select
  date,
  count(distinct user_id) as daily_active_users,
  count(*) as total_sessions,
  round(avg(time_spent), 1) as avg_session_time,
  round(sum(case when lesson_completed then 1 else 0 end) * 100.0 / count(*), 1) as completion_rate,
  round(count(distinct case when subscription_type = 'premium' then user_id end) * 100.0 /
    count(distinct user_id), 1) as premium_rate
from activity
where date >= current_date - make_interval(days => $1)
group by date
order by date;
`

const QCohortRetention = `--sql bc166844-b26d-4cf4-bc5b-3b457aa77fd4
with user_cohorts as (
  select user_id, min(date) as signup_date, date_trunc('week', min(date))::date as cohort_week
  from activity
  group by user_id
),
cohort_activity as (
  select
    uc.cohort_week,
    floor((a.date - uc.signup_date) / 7.0)::int as period_number,
    count(distinct uc.user_id) as users
  from user_cohorts uc
  join activity a on a.user_id = uc.user_id
  where uc.cohort_week >= current_date - interval '12 weeks'
  group by uc.cohort_week, period_number
),
cohort_sizes as (
  select cohort_week, count(*) as cohort_size
  from user_cohorts
  where cohort_week >= current_date - interval '12 weeks'
  group by cohort_week
)
select
  ca.cohort_week,
  ca.period_number,
  ca.users,
  cs.cohort_size,
  round(ca.users * 100.0 / cs.cohort_size, 1) as retention_rate
from cohort_activity ca
join cohort_sizes cs on cs.cohort_week = ca.cohort_week
order by ca.cohort_week, ca.period_number;
`

const QConversionFunnel = `--sql 0885423f-4de4-4f8e-8415-5f4ce82bf2b3
select
  count(distinct user_id) as total_users,
  count(distinct case when completed_any then user_id end) as completed_lesson,
  count(distinct case when lessons_completed >= 3 then user_id end) as completed_3_lessons,
  count(distinct case when became_premium then user_id end) as premium_users
from (
  select
    user_id,
    bool_or(lesson_completed) as completed_any,
    sum(case when lesson_completed then 1 else 0 end) as lessons_completed,
    bool_or(subscription_type = 'premium') as became_premium
  from activity
  group by user_id
) t;
`

const QSegmentation = `--sql 66a67646-b5aa-4e50-9c0f-4ddf415f8e75
select
  device_type,
  subscription_type,
  count(distinct user_id) as users,
  round(avg(time_spent), 1) as avg_session_time,
  round(avg(case when lesson_completed then 1.0 else 0.0 end) * 100, 1) as completion_rate,
  count(*) as total_sessions
from activity
where date >= current_date - interval '7 days'
group by device_type, subscription_type
order by users desc;
`

const QLifecycleStages = `--sql 14180d8a-b10b-4774-bf80-c95f4bd95711
with user_lifecycle as (
  select
    user_id,
    min(date) as first_session,
    max(date) as last_session,
    count(distinct date) as active_days,
    count(*) as total_sessions,
    avg(time_spent) as avg_session_duration,
    sum(case when lesson_completed then 1 else 0 end) as lessons_completed,
    max(case when subscription_type = 'premium' then 1 else 0 end) as became_premium,
    (max(date) - min(date)) + 1 as lifecycle_days
  from activity
  group by user_id
),
lifecycle_segments as (
  select *,
    case
      when active_days = 1 then 'One-time'
      when active_days <= 7 and lifecycle_days <= 14 then 'New'
      when last_session >= current_date - interval '7 days' then 'Active'
      when last_session >= current_date - interval '30 days' then 'At Risk'
      else 'Churned'
    end as lifecycle_stage
  from user_lifecycle
)
select
  lifecycle_stage,
  count(*) as users,
  round(avg(total_sessions), 1) as avg_sessions,
  round(avg(avg_session_duration), 1) as avg_duration,
  round(avg(lessons_completed), 1) as avg_lessons,
  round(sum(became_premium) * 100.0 / count(*), 1) as conversion_rate
from lifecycle_segments
group by lifecycle_stage
order by
  case lifecycle_stage
    when 'New' then 1
    when 'Active' then 2
    when 'At Risk' then 3
    when 'Churned' then 4
    when 'One-time' then 5
  end;
`

const QCoursePerformance = `--sql 8c2f2d2f-1199-4db6-96e5-2c5691a59be2
select
  course_id,
  count(distinct user_id) as total_users,
  count(*) as total_sessions,
  round(avg(time_spent), 1) as avg_session_duration,
  round(sum(case when lesson_completed then 1 else 0 end) * 100.0 / count(*), 1) as completion_rate,
  round(count(distinct case when subscription_type = 'premium' then user_id end) * 100.0 /
    count(distinct user_id), 1) as premium_conversion_rate
from activity
where date >= current_date - interval '30 days'
group by course_id
order by total_users desc;
`
